package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownColumn      = errors.New("unknown column")
	ErrMissingColumn      = errors.New("missing required column")
	ErrDuplicateBookingID = errors.New("duplicate booking_id")
	ErrNullValues         = errors.New("null values in projection")
)

// DuplicateIDError reports that fewer distinct booking ids than rows were derived.
type DuplicateIDError struct {
	Unique int
	Rows   int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate booking_ids found (%d unique / %d rows)", e.Unique, e.Rows)
}

func (e *DuplicateIDError) Unwrap() error { return ErrDuplicateBookingID }

// NullValuesError names the projection that still holds null cells.
type NullValuesError struct {
	Projection string
	Nulls      int
}

func (e *NullValuesError) Error() string {
	return fmt.Sprintf("[%s] still contains %d null value(s)", e.Projection, e.Nulls)
}

func (e *NullValuesError) Unwrap() error { return ErrNullValues }
