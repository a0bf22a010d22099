package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/insighted-client/models"
)

// Field name constants used to restrict validation to a subset of fields.
// They match the Go field names of the form models.
const (
	FieldName      = "Name"
	FieldEmail     = "Email"
	FieldPassword  = "Password"
	FieldYearLevel = "YearLevel"
)

var knownFields = map[string]struct{}{
	FieldName:      {},
	FieldEmail:     {},
	FieldPassword:  {},
	FieldYearLevel: {},
}

type FormValidator struct {
	validate *validator.Validate
}

func NewFormValidator() Validator {
	return &FormValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks one of the supported form models:
//   - models.Credentials
//   - models.Registration
//   - models.StudentPatch
//   - models.StudentProfileUpdate
//   - models.AccountUpdate
//
// Both value and pointer forms are accepted. Returns ErrUnsupportedType for
// anything else.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials, models.Registration, models.StudentPatch,
		models.StudentProfileUpdate, models.AccountUpdate:
		return v.validateStruct(ctx, value, fields...)
	case *models.Credentials, *models.Registration, *models.StudentPatch,
		*models.StudentProfileUpdate, *models.AccountUpdate:
		return v.validateStruct(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		for _, f := range fields {
			if _, ok := knownFields[f]; !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
		}
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}

	return translate(err)
}

// translate reports the first failed rule as a sentinel wrapped with the
// lower-cased field name, e.g. "email: invalid email address".
func translate(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s: %w", field, ErrRequiredField)
	case "email":
		return fmt.Errorf("%s: %w", field, ErrInvalidEmail)
	case "min":
		return fmt.Errorf("%s: %w (min %s)", field, ErrValueTooShort, fe.Param())
	default:
		return fmt.Errorf("%s: %w", field, ErrInvalidValue)
	}
}
