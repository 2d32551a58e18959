package alarms

import (
	"errors"
	"fmt"
)

var ErrInvalidAssetID = errors.New("invalid asset id")
var ErrLookupFailure = errors.New("lookup failure")

// LookupError is returned when a collaborator fails or times out. Callers
// should treat the accompanying (empty) result as degraded, not as "no alarms".
type LookupError struct {
	Collaborator string
	Err          error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrLookupFailure.Error(), e.Collaborator, e.Err.Error())
}

func (e *LookupError) Is(target error) bool {
	return target == ErrLookupFailure
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// DataIntegrityError describes a row whose legacy fields could not be trusted.
// The row is skipped, never the whole family.
type DataIntegrityError struct {
	Entity string
	ID     int
	Field  string
	Value  string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity: %s %d has invalid %s %q", e.Entity, e.ID, e.Field, e.Value)
}
