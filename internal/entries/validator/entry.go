package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"entrycheck/pkg/model"
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
	return fmt.Sprintf("validation failed: %d error(s)", len(v))
}

// Details flattens the errors for an AppError payload.
func (v ValidationErrors) Details() map[string]any {
	details := make(map[string]any, len(v))
	for _, e := range v {
		details[e.Field] = e.Message
	}
	return details
}

// EntryValidator checks the shape of incoming requests. It does not judge the
// entry values themselves; that is the parser's job.
type EntryValidator struct {
	validate *validator.Validate
}

func NewEntryValidator() *EntryValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &EntryValidator{
		validate: v,
	}
}

func (v *EntryValidator) ValidateEntry(req *model.EntryRequest) error {
	return v.validateStruct(req)
}

func (v *EntryValidator) ValidateBatch(req *model.BatchRequest) error {
	return v.validateStruct(req)
}

func (v *EntryValidator) validateStruct(s any) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var out ValidationErrors

	for _, err := range errs {
		out = append(out, ValidationError{
			Field:   fieldPath(err),
			Message: describe(err),
		})
	}

	return out
}

// fieldPath drops the top-level struct name: "BatchRequest.entries[0].kind"
// becomes "entries[0].kind".
func fieldPath(err validator.FieldError) string {
	ns := err.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func describe(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(err.Param()), ", "))
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", err.Param())
	default:
		return fmt.Sprintf("failed %q validation", err.Tag())
	}
}
