// Package agent provides the delivery agent aggregate and its ephemeral position.
//
// Key business rules:
//   - An agent belongs to exactly one vendor's roster and may only be assigned that vendor's orders
//   - The active delivery count is incremented on assignment, decremented on delivery or
//     cancellation, and never negative
//   - A Position is last-writer-wins and never historised
package agent
