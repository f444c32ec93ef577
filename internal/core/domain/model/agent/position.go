package agent

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// Position is an agent's last known location. There is one per agent; every sample
// overwrites it and nothing is kept as history.
type Position struct {
	AgentID    kernel.UUID
	Point      kernel.GeoPoint
	RecordedAt time.Time
}

func NewPosition(agentID kernel.UUID, point kernel.GeoPoint, recordedAt time.Time) (Position, error) {
	var timeErr error
	if recordedAt.IsZero() {
		timeErr = errs.NewValueIsRequiredError("recorded at")
	}
	if err := errors.Join(agentID.Validate(), point.Validate(), timeErr); err != nil {
		return Position{}, err
	}
	return Position{AgentID: agentID, Point: point, RecordedAt: recordedAt.UTC()}, nil
}

// IsNewerThan is used by observers that may receive the same position twice.
func (p Position) IsNewerThan(prev Position) bool {
	return p.RecordedAt.After(prev.RecordedAt)
}
