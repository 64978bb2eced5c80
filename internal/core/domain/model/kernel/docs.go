// Package kernel provides core domain primitives for the order lifecycle engine.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - Location: A value object for validated geographic coordinates
//   - RouteEstimate: A distance/duration pair produced by geo estimation
//   - VND money helpers for whole-unit currency amounts
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
