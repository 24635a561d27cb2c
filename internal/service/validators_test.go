package service

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestNewValidator_CustomTags(t *testing.T) {
	var validate *validator.Validate
	assert.NotPanics(t, func() { validate = NewValidator() })

	assert.Error(t, validate.Var("   ", notBlankTag))
	assert.NoError(t, validate.Var("x", notBlankTag))
	assert.Error(t, validate.Var("jane@uni", portalEmailTag))
	assert.NoError(t, validate.Var("jane@uni.edu", portalEmailTag))
}

func TestMustRegister_PanicsOnBadTag(t *testing.T) {
	assert.Panics(t, func() { mustRegister(validator.New(), "", notBlankValidation) })
}
