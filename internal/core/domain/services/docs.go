// Package services provides the domain services of the orderflow service: workflows that
// span more than one aggregate.
//
// The package includes:
//   - PricingEngine: pure order pricing and vendor commission
//   - DeliveryCoordinator: agent assignment, confirmation-code delivery proof and
//     windowed delivery requests
//   - CodeGenerator: source of 4-digit confirmation codes
package services
