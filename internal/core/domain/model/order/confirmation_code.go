package order

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"orderflow/internal/pkg/errs"
)

// CodeLength is the number of ASCII digits in a confirmation code. Leading zeros are significant.
const CodeLength = 4

// ConfirmationCode is the proof-of-delivery secret. The customer reads it to the agent,
// so physical presence is what proves the handoff.
type ConfirmationCode string

// NewConfirmationCode accepts exactly CodeLength ASCII digits.
func NewConfirmationCode(s string) (ConfirmationCode, error) {
	if len(s) != CodeLength {
		return "", errs.NewValueIsInvalidErrorWithCause("confirmation code", fmt.Errorf("want %d digits", CodeLength))
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return "", errs.NewValueIsInvalidErrorWithCause("confirmation code", fmt.Errorf("%q is not a digit", s[i]))
		}
	}
	return ConfirmationCode(s), nil
}

func (c ConfirmationCode) String() string {
	return string(c)
}

// Matches strips everything but digits from submitted and compares in constant time.
func (c ConfirmationCode) Matches(submitted string) bool {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, submitted)

	return subtle.ConstantTimeCompare([]byte(digits), []byte(c)) == 1
}
