package dispatch

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// RequestStatus is the state of a delivery request. Offered is the only open state.
type RequestStatus int

const (
	RequestStatusUnknown RequestStatus = iota
	Offered
	Accepted
	Rejected
	Expired
)

func getRequestStatusStrings() map[RequestStatus]string {
	return map[RequestStatus]string{
		Offered:  "offered",
		Accepted: "accepted",
		Rejected: "rejected",
		Expired:  "expired",
	}
}

func (s RequestStatus) String() string {
	if str, ok := getRequestStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func ParseRequestStatus(s string) (RequestStatus, error) {
	for status, str := range getRequestStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return RequestStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"request status", fmt.Errorf("%q is not a valid request status", s))
}
