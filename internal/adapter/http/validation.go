package http

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	reMobile     = regexp.MustCompile(`^\+[1-9][0-9]{3,14}$`)
	reLoanNumber = regexp.MustCompile(`^[0-9]{12}$`)
)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their json name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	// E.164-ish: leading +, no leading zero, 4 to 15 digits
	_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return reMobile.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("loannumber", func(fl validator.FieldLevel) bool {
		return reLoanNumber.MatchString(fl.Field().String())
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

var (
	defaultValidatorOnce sync.Once
	defaultValidator     *CustomValidator
)

// Violations lists every constraint i breaks; an empty result means valid.
func Violations(i any) []FieldError {
	defaultValidatorOnce.Do(func() { defaultValidator = NewValidator() })
	if err := defaultValidator.Validate(i); err != nil {
		return ToFieldErrors(err)
	}
	return nil
}

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "must not be empty"})
		case "mobile":
			out = append(out, FieldError{Field: field, Message: "must be a mobile number in international format, e.g. +122234567890"})
		case "loannumber":
			out = append(out, FieldError{Field: field, Message: "must be exactly 12 digits"})
		case "gt":
			out = append(out, FieldError{Field: field, Message: "must be greater than " + e.Param()})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
