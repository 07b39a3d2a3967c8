package errors

import "errors"

var (
	ErrMissingField = errors.New("required field is missing")

	ErrInvalidName = errors.New("name must be text")

	ErrInvalidAge = errors.New("age is not an integer")

	ErrInvalidField = errors.New("field must be text")

	ErrNotArray = errors.New("patient data must be a JSON array")

	ErrTrailingData = errors.New("unexpected data after patient array")
)
