package order

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders always follow the business
// workflow:
//
//	Draft ──> Formed ──┬──> Completed
//	  │         │      └──> Rejected
//	  └─────────┴──> Deleted
//
// Deleted, Completed, and Rejected are terminal. The string forms are the
// exact wire and storage representation.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusDraft is the initial status: the client's in-progress cart.
	StatusDraft

	// StatusDeleted is a terminal status reached by explicit soft deletion.
	StatusDeleted

	// StatusFormed is a submitted order awaiting kitchen fulfillment.
	StatusFormed

	// StatusCompleted is a terminal status set by a manager finalizing the order.
	StatusCompleted

	// StatusRejected is a terminal status set by a manager declining the order.
	StatusRejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusDraft:     "DRAFT",
		StatusDeleted:   "DELETED",
		StatusFormed:    "FORMED",
		StatusCompleted: "COMPLETED",
		StatusRejected:  "REJECTED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusDraft:     "DRAFT",
		StatusDeleted:   "DELETED",
		StatusFormed:    "FORMED",
		StatusCompleted: "COMPLETED",
		StatusRejected:  "REJECTED",
	}
}

// Validate checks that the Status is one of the defined values.
// StatusUnknown and anything outside the enum are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical status name ("DRAFT", "FORMED", ...).
// Safe to call on any value; invalid statuses yield "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a canonical status name, as stored in the
// database or received in a filter parameter.
func StatusFromString(value string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == value {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", value))
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusDeleted || s == StatusCompleted || s == StatusRejected
}

// Form transitions the status to Formed.
//
// Valid transitions:
//   - Draft -> Formed
//
// Returns (0, InvalidTransitionError) from any other status.
func (s Status) Form() (Status, error) {
	if s != StatusDraft {
		return 0, errs.NewInvalidTransitionError("form", s.String(), StatusDraft.String())
	}
	return StatusFormed, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Formed -> Completed
//
// Returns (0, InvalidTransitionError) from any other status.
func (s Status) Complete() (Status, error) {
	if s != StatusFormed {
		return 0, errs.NewInvalidTransitionError("complete", s.String(), StatusFormed.String())
	}
	return StatusCompleted, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Formed -> Rejected
//
// Returns (0, InvalidTransitionError) from any other status.
func (s Status) Reject() (Status, error) {
	if s != StatusFormed {
		return 0, errs.NewInvalidTransitionError("reject", s.String(), StatusFormed.String())
	}
	return StatusRejected, nil
}

// Delete transitions the status to Deleted (soft delete).
//
// Valid transitions:
//   - Draft -> Deleted
//   - Formed -> Deleted
//
// Terminal statuses cannot be deleted again.
func (s Status) Delete() (Status, error) {
	if s.IsTerminal() || s.Validate() != nil {
		return 0, errs.NewInvalidTransitionError("delete", s.String(), "a non-terminal status")
	}
	return StatusDeleted, nil
}
