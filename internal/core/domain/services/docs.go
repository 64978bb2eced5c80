// Package services provides domain services that implement business rules
// spanning more than one aggregate in the ordering system.
//
// The package includes:
//   - FeeCalculator: computes delivery and service fees for an order from a
//     pricing policy and an optional route estimate
//
// Domain services are pure: they take validated inputs and return values,
// leaving persistence and transport to the application layer.
package services
