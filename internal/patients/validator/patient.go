package validator

import (
	"errors"
	"fmt"
	"patientcleaner/pkg/logger"
	"patientcleaner/pkg/model"
	"patientcleaner/pkg/sanitizer"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

type PatientValidator struct {
	validate *validator.Validate
	log      *logger.Logger
	minAge   int
}

// NewPatientValidator builds a validator whose "minage" rule rejects ages
// below minAge.
func NewPatientValidator(log *logger.Logger, minAge int) *PatientValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation("titlecase", validateTitleCase); err != nil {
		log.Fatal("Failed to register titlecase validator", "error", err)
	}
	if err := v.RegisterValidation("minage", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() >= int64(minAge)
	}); err != nil {
		log.Fatal("Failed to register minage validator", "error", err)
	}

	return &PatientValidator{
		validate: v,
		log:      log,
		minAge:   minAge,
	}
}

func (v *PatientValidator) MinAge() int {
	return v.minAge
}

// Validate checks the invariants every clean record must hold. It is safe for
// concurrent use.
func (v *PatientValidator) Validate(p *model.Patient) error {
	if err := v.validate.Struct(p); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *PatientValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		validationErrors = append(validationErrors, ValidationError{
			Field:   strings.ToLower(err.Field()),
			Message: v.messageFor(err),
		})
	}

	return validationErrors
}

func (v *PatientValidator) messageFor(err validator.FieldError) string {
	switch err.Tag() {
	case "titlecase":
		return "must be title-cased"
	case "minage":
		return fmt.Sprintf("must be at least %d", v.minAge)
	default:
		return fmt.Sprintf("failed %s validation", err.Tag())
	}
}

func validateTitleCase(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return sanitizer.NormalizeName(value) == value
}
