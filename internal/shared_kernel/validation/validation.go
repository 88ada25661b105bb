package validation

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/ttacon/libphonenumber"
)

const (
	DefaultRegion = "PH"

	_phoneTag = "phone"
)

var (
	instance *validator.Validate
	once     sync.Once
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
		_ = instance.RegisterValidation(_phoneTag, func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if value == "" {
				return true
			}
			region := fl.Param()
			if region == "" {
				region = DefaultRegion
			}
			return ValidatePhoneNumber(value, region) == nil
		})
	})

	return instance
}

// Error carries the failed rule for each offending field, keyed by its json path.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = fmt.Sprintf("%s: %s", key, e.Fields[key])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *Error) Add(field, rule string) *Error {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = rule
	return e
}

func (e *Error) Merge(other *Error) *Error {
	if other == nil {
		return e
	}
	for field, rule := range other.Fields {
		e.Add(field, rule)
	}
	return e
}

// Nest re-keys every field under prefix, as in "ncd.height_cm".
func (e *Error) Nest(prefix string) *Error {
	nested := &Error{}
	for field, rule := range e.Fields {
		nested.Add(prefix+"."+field, rule)
	}
	return nested
}

func (e *Error) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func NewError(field, rule string) *Error {
	return (&Error{}).Add(field, rule)
}

// Struct validates struct tags and returns *Error when any rule fails.
func Struct(value any) error {
	err := get().Struct(value)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validating: %w", err)
	}

	return ProcessValidationErrors(validationErrors)
}

// Var checks a single value against tag and reports it under field.
func Var(field string, value any, tag string) *Error {
	err := get().Var(value, tag)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return NewError(field, tag)
	}
	return NewError(field, validationErrors[0].Tag())
}

func ProcessValidationErrors(validationErrors validator.ValidationErrors) *Error {
	result := &Error{Fields: make(map[string]string, len(validationErrors))}
	for _, ve := range validationErrors {
		result.Fields[fieldPath(ve.Namespace())] = ve.Tag()
	}
	return result
}

func ValidatePhoneNumber(phoneNumber, region string) error {
	p, err := libphonenumber.Parse(phoneNumber, region)
	if err != nil {
		return err
	}

	if !libphonenumber.IsValidNumberForRegion(p, region) {
		return fmt.Errorf("phone number is not valid for region %s", region)
	}

	return nil
}

// FormatPhoneNumber returns the E.164 form used as a lookup key.
func FormatPhoneNumber(phoneNumber, region string) (string, error) {
	p, err := libphonenumber.Parse(phoneNumber, region)
	if err != nil {
		return "", err
	}
	return libphonenumber.Format(p, libphonenumber.E164), nil
}

func IsValidationError(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return path
}
