// Package kernel provides the shared domain primitives of the orderflow service.
//
// The package includes:
//   - UUID: identifier value object for every entity
//   - GeoPoint: validated WGS84 coordinate with Haversine distance
//   - Money: non-negative decimal amount rounded to two places
//   - Role and Actor: the trusted caller identity that gates state transitions
//
// All types are immutable values and safe for concurrent use.
package kernel
