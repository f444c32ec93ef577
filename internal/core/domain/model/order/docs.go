// Package order provides the Order aggregate and its status state machine.
//
// The package includes:
//   - Order: the aggregate root holding the frozen purchase and the workflow status
//   - Status: closed enum with an explicit, role-gated transition table
//   - LineItem, Price, Payment, DeliveryTarget: write-once value objects
//   - ConfirmationCode: the 4-digit proof-of-delivery secret
//   - StatusChanged: the event recorded by every transition
//   - Snapshot and Filter: the read-only form observed by queries and subscriptions
//
// Key business rules:
//   - Status moves forward along the graph or to Cancelled, never backwards
//   - Cancellation is possible from Pending, Accepted and Preparing only
//   - Out-for-delivery and Delivered are entered only through the delivery coordinator
//   - The confirmation code can be used exactly once
package order
