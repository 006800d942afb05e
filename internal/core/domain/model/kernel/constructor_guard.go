package kernel

import "errors"

// ErrDefaultConstructorGuard is the default error returned by
// ConstructorGuard.Validate when a nil validation error is passed. This
// ensures validation always fails with a meaningful message even if no
// specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created
// through their designated constructor functions. It prevents direct struct
// initialization and enforces validation rules.
//
// The guard maintains an internal flag that is only set when the object is
// created through the proper constructor. Any attempt to use a zero-value
// struct fails validation, which keeps domain objects in a valid state.
//
// Example usage:
//
//	var ErrHistoryEntryNotConstructed = errors.New("HistoryEntry must be created via NewHistoryEntry")
//
//	type HistoryEntry struct {
//	    status Status
//	    guard  kernel.ConstructorGuard
//	}
//
//	func NewHistoryEntry(status Status) (HistoryEntry, error) {
//	    if err := status.Validate(); err != nil {
//	        return HistoryEntry{}, err
//	    }
//	    return HistoryEntry{status: status, guard: kernel.NewConstructorGuard()}, nil
//	}
//
//	func (e HistoryEntry) Validate() error {
//	    return e.guard.Validate(ErrHistoryEntryNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. This should be called in the constructor of domain
// objects so they can be distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed
// through its designated constructor function.
//
// If the object was created as a zero value, this method returns the
// provided validation error; if validationError is nil,
// ErrDefaultConstructorGuard is returned instead.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
