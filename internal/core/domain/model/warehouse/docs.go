// Package warehouse provides the Warehouse aggregate for capacity tracking
// in the freight system.
//
// The package includes:
//   - Warehouse: The aggregate root holding capacity, current load, and utilization math
//   - LoadBand: A classification of utilization for operations dashboards
//
// Key business rules:
//   - Warehouses must have a valid unique identifier, code, name, and positive capacity
//   - The current load never leaves the range [0, capacity]
//   - AdjustLoad is the only load mutator and rejects bound violations
//   - Utilization is the load as a rounded percentage of capacity
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package warehouse
