// Package guard provides the constructor guard pattern used by domain objects
// to reject zero-value instances that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. Embedding a guard in a struct lets Validate distinguish a
// properly built instance from a zero value, which keeps domain invariants
// enforceable even when structs are exported across package boundaries.
//
// Example:
//
//	type Tote struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewTote(name string) (Tote, error) {
//	    if name == "" {
//	        return Tote{}, errors.New("name is required")
//	    }
//	    return Tote{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (t Tote) Validate() error {
//	    return t.guard.Validate(ErrToteIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it in every domain constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. A zero-value guard
// yields validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
