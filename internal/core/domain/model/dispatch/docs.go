// Package dispatch models delivery requests: an order offered to one agent with a bounded
// acceptance window, resolved as accepted, rejected or expired.
package dispatch
