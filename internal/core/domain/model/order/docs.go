// Package order implements the order aggregate: a client's cart that moves
// through the DRAFT → FORMED → {COMPLETED | REJECTED} lifecycle, the Line
// entities tracking per-product ordered and prepared quantities, and the
// Status state machine guarding every transition.
//
// The aggregate enforces validate-then-mutate semantics: a transition
// attempted from a state lacking its precondition fails with an
// InvalidTransition error and leaves the order untouched. Quantity
// arithmetic lives on Line, which maintains the prepared <= quantity
// invariant; the storage layer serializes concurrent Line mutations with
// row-level locks.
package order
