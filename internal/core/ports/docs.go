// Package ports defines the contracts between the order workflow core and its
// infrastructure: storage behind repositories and a unit of work, the live position
// store, change publishers feeding the synchronization layer and the push notifier.
package ports
