// Package driver provides the Driver aggregate and the performance
// projection for delivery agents in the freight system.
//
// The package includes:
//   - Driver: The aggregate root with identity, availability, location, and commission rate
//   - Performance: A pure projection of historical shipment outcomes
//
// Key business rules:
//   - Drivers must have a valid unique identifier, name, email, vehicle, and license
//   - Availability is flipped by shipment assignment and terminal outcomes
//   - The commission rate is a per-driver parameter in [0, 1]
//   - Performance figures are derived, never stored, and handle the zero-shipment case
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package driver
