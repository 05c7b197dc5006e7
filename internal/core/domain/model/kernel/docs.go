// Package kernel provides core domain primitives for the kitchen ordering
// system. It implements the fundamental building blocks shared by every
// aggregate in the domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and
//     comparison capabilities
//   - ConstructorGuard: a defensive pattern to ensure objects are built
//     through their constructors
//
// These primitives enforce domain invariants at the edges: a zero-value UUID
// or a struct that skipped its constructor fails validation before it can
// reach persistence. All types here are immutable and safe for concurrent
// use.
package kernel
