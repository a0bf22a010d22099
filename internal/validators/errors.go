package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrRequiredField = errors.New("field is required")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrValueTooShort = errors.New("value is too short")
	ErrInvalidValue  = errors.New("invalid value")
)
