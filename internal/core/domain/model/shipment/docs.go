// Package shipment provides domain entities and business logic for shipment
// lifecycle management in the freight system. It implements the Shipment
// aggregate root with an explicit status state machine and an append-only
// status history.
//
// The package includes:
//   - Shipment: The aggregate root that manages shipment identity, commercial attributes, and lifecycle
//   - Status: A state machine that enforces the allowed status transition table
//   - HistoryEntry: An immutable audit record appended on every transition
//   - Customer: A value object for the recipient's contact details
//
// Key business rules:
//   - Shipments must have a valid identifier, tracking number, barcode, and merchant
//   - Status follows the table New -> InReceipt -> InWarehouse -> WithDriver -> {Delivered | DeliveryFailed},
//     with DeliveryFailed able to retry to WithDriver or terminate as Returned / PartialReturned
//   - Transitioning to the current status is a no-op; no history entry is appended
//   - History is append-only: the last entry's status always equals the shipment's status
//   - Pickup time is stamped on first entry into WithDriver, delivery time on Delivered
//   - Shipments can only be deleted while still in New
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
