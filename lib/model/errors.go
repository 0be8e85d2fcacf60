package model

import (
	"fmt"
)

// LoadError is returned when a dataset can not be read.
type LoadError struct {
	Source string
	Line   int
	Err    error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("error loading %v (line %v): %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("error loading %v: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// AggregationError is returned when a row has a count that can not be summed.
type AggregationError struct {
	Line      int
	Year      int
	Area      string
	CrimeType CrimeType
	Value     string
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("invalid %v count '%v' for %v in %v (line %v)", e.CrimeType, e.Value, e.Area, e.Year, e.Line)
}

type UnknownCrimeTypeError struct {
	Label string
}

func (e *UnknownCrimeTypeError) Error() string {
	return fmt.Sprintf("unknown crime type: '%v'", e.Label)
}

// FilterError is returned when a selection refers to values outside the dataset domains.
type FilterError struct {
	Message string
}

func NewFilterError(format string, a ...any) *FilterError {
	return &FilterError{Message: fmt.Sprintf(format, a...)}
}

func (e *FilterError) Error() string {
	return e.Message
}
