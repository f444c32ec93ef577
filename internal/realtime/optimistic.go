package realtime

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// Optimistic shows speculative in view before the write is confirmed, runs commit and
// puts the previous state back if commit fails. The confirmed snapshot arrives later
// through the view's subscription like any other update.
func Optimistic(
	ctx context.Context,
	view *OrderListView,
	speculative order.Snapshot,
	commit func(ctx context.Context) error,
) error {
	prev, held := view.Get(speculative.ID)
	view.replace(speculative.ID, speculative, true)

	if err := commit(ctx); err != nil {
		current, _ := view.Get(speculative.ID)
		// an authoritative update may have landed meanwhile; keep it
		if !current.IsNewerThan(speculative) {
			view.replace(speculative.ID, prev, held)
		}
		return err
	}
	return nil
}
