// Package catalog holds the read models checkout needs from the vendor catalog:
// Vendor with its FeeSchedule and commission rate, and MenuItem with its live price.
package catalog
