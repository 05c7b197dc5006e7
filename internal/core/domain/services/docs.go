// Package services provides domain services that implement business rules
// spanning multiple aggregates.
//
// The package includes:
//   - AccessPolicy: role-based visibility and permission rules for orders
//
// Domain services hold logic that does not naturally belong to a single
// aggregate root, following Domain-Driven Design principles.
package services
