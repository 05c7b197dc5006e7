package kernel

import "errors"

// ErrDefaultConstructorGuard is the fallback validation error used by
// ConstructorGuard.Validate when the caller passes nil.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures entities and value objects are only created
// through their designated constructor functions. Embedding it in a struct
// lets Validate detect zero-value instances that bypassed construction and
// therefore bypassed invariant checks.
//
// Example:
//
//	type Product struct {
//	    name  string
//	    guard kernel.ConstructorGuard
//	}
//
//	func NewProduct(name string) (Product, error) {
//	    if name == "" {
//	        return Product{}, errors.New("name is required")
//	    }
//	    return Product{name: name, guard: kernel.NewConstructorGuard()}, nil
//	}
//
//	func (p Product) Validate() error {
//	    return p.guard.Validate(ErrProductIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as properly
// constructed. Only constructors should call this.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed object. For a zero-value
// guard it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
