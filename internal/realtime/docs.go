// Package realtime is the synchronization layer between the order store and the parties
// observing it.
//
// A Hub receives committed order snapshots and agent positions, either from the unit of
// work after commit or from the PostgreSQL change feed, and fans them out to
// subscriptions. Publishing never blocks: every subscription owns a coalescing mailbox
// that keeps only the newest pending value per key, and a forwarder goroutine hands
// values to the subscriber one at a time. Values that do not supersede what the
// subscriber already received are dropped, which makes at-least-once delivery from
// several sources safe.
//
// Derived state such as the vendor's "new order" alert is never kept incrementally.
// OrderListView holds the full current map and recomputes it on every update.
//
//	sub := hub.SubscribeOrders(ctx, order.Filter{VendorID: vendorID})
//	defer sub.Close()
//
//	view := realtime.NewOrderListView(order.Filter{VendorID: vendorID})
//	view.Seed(initial)
//	for s := range sub.Updates() {
//	    view.Apply(s)
//	    render(view.Snapshots(), view.AnyPending())
//	}
package realtime
