package service

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// custom validation tags
	notBlankTag    = "notblank"
	portalEmailTag = "portal_email"
	// something@something.something, no whitespace
	portalEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// FieldError is a validation failure on one form field.
type FieldError struct {
	Field string // json name of the field
	Tag   string
	Error string
}

// ValidationError carries every failing field of one request.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func (err *ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

func (err *ValidationError) Unwrap() error {
	return err.Err
}

// Field returns the message for name, or "".
func (err *ValidationError) Field(name string) string {
	for _, f := range err.Fields {
		if f.Field == name {
			return f.Error
		}
	}
	return ""
}

// HasTag reports whether any field failed on tag.
func (err *ValidationError) HasTag(tag string) bool {
	for _, f := range err.Fields {
		if f.Tag == tag {
			return true
		}
	}
	return false
}

// NewValidator returns a validator that reports json field names and knows
// the portal's custom tags.
func NewValidator() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(validate, notBlankTag, notBlankValidation)
	mustRegister(validate, portalEmailTag, portalEmailValidation)
	return validate
}

// mustRegister panics on a bad tag: a validator missing a rule would
// accept every value for it.
func mustRegister(validate *validator.Validate, tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic("registering validation " + tag + ": " + err.Error())
	}
}

// validateStruct runs v over s and folds failures into a *ValidationError
// wrapping base. messages is looked up by "field.tag", then by "tag".
func validateStruct(v *validator.Validate, s interface{}, base error, messages map[string]string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Err: base}
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg, ok = messages[fe.Tag()]
		}
		if !ok {
			msg = "this field is invalid"
		}
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Tag: fe.Tag(), Error: msg})
	}
	return out
}

func notBlankValidation(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func portalEmailValidation(fl validator.FieldLevel) bool {
	return portalEmailRegex.MatchString(fl.Field().String())
}
