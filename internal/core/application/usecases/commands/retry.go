package commands

import (
	"context"
	"errors"
	"slices"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// retryOnConflict runs attempt and, if it lost a guarded write to a concurrent writer,
// runs it exactly once more against freshly loaded state. The second outcome is final:
// the domain then reports what really happened, or ConcurrentModification again.
func retryOnConflict(ctx context.Context, attempt func(ctx context.Context) error) error {
	err := attempt(ctx)
	if errors.Is(err, errs.ErrConcurrentModification) {
		return attempt(ctx)
	}
	return err
}

// requireRole gates commands that only some kinds of actor may issue at all, before
// any order-level check.
func requireRole(actor kernel.Actor, action string, roles ...kernel.Role) error {
	if slices.Contains(roles, actor.Role) {
		return nil
	}
	return errs.NewUnauthorizedError(actor.Role, action)
}
