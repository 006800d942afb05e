package shipment

import (
	"errors"
	"fmt"

	"freight/internal/pkg/errs"
)

// ErrInvalidStatusTransition indicates that the requested target status is
// not reachable from the shipment's current status according to the allowed
// transition table.
var ErrInvalidStatusTransition = errors.New("status transition is not allowed")

// Status represents the lifecycle state of a shipment. It implements a state
// machine with an explicit allowed-transition table.
//
// State transitions:
//
//	New ──> InReceipt ──> InWarehouse ──> WithDriver ──┬──> Delivered
//	                                          ^        │
//	                                          │        └──> DeliveryFailed ──┬──> Returned
//	                                          │                  │           └──> PartialReturned
//	                                          └──────────────────┘
//	                                              (retry)
//
// Delivered, Returned, and PartialReturned are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status assigned at creation, before the carrier
	// has taken custody. Shipments can only be deleted in this status.
	New

	// InReceipt indicates the shipment has been handed over and is being
	// received and checked in.
	InReceipt

	// InWarehouse indicates the shipment occupies a slot in its assigned
	// warehouse. Entering and leaving this status adjusts warehouse load.
	InWarehouse

	// WithDriver indicates the shipment is out for delivery with its
	// assigned driver. First entry stamps the pickup time.
	WithDriver

	// Delivered indicates successful delivery. Terminal.
	Delivered

	// DeliveryFailed indicates a failed delivery attempt. The shipment can
	// retry with a driver or terminate as a return.
	DeliveryFailed

	// Returned indicates the shipment went back to the merchant in full. Terminal.
	Returned

	// PartialReturned indicates a partial return. Terminal.
	PartialReturned
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		New:             "NEW",
		InReceipt:       "IN_RECEIPT",
		InWarehouse:     "IN_WAREHOUSE",
		WithDriver:      "WITH_DRIVER",
		Delivered:       "DELIVERED",
		DeliveryFailed:  "DELIVERY_FAILED",
		Returned:        "RETURNED",
		PartialReturned: "PARTIAL_RETURNED",
	}
}

// allowedTransitions is the explicit transition table. A status missing from
// the map (or with an empty slice) is terminal.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		New:            {InReceipt},
		InReceipt:      {InWarehouse},
		InWarehouse:    {WithDriver},
		WithDriver:     {Delivered, DeliveryFailed},
		DeliveryFailed: {WithDriver, Returned, PartialReturned},
	}
}

// StatusFromString parses the wire representation (e.g. "IN_WAREHOUSE") into
// a Status. Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is a member of the enum.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status, or "UNKNOWN" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Returned || s == PartialReturned
}

// CanTransitionTo reports whether the transition table allows moving from
// this status to target. A transition to the same status is not covered by
// the table; callers treat it as a no-op.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range allowedTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the move from this status to target against the
// transition table and returns the new status.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, error) wrapping ErrInvalidStatusTransition otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, s, target)
	}

	return target, nil
}
