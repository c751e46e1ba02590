package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDNI(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidateDNI("12345678"))
	assert.Error(t, v.ValidateDNI(""))
	assert.Error(t, v.ValidateDNI("1234567"))
	assert.Error(t, v.ValidateDNI("123456789"))
	assert.Error(t, v.ValidateDNI("1234567a"))
}

func TestValidateEmail(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidateEmail("juan.perez@example.com"))
	assert.Error(t, v.ValidateEmail(""))
	assert.Error(t, v.ValidateEmail("sin-arroba"))
	assert.Error(t, v.ValidateEmail("a@b"))
}

func TestValidatePhone(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidatePhone("987654321"))
	assert.NoError(t, v.ValidatePhone("+51 987 654 321"))
	assert.NoError(t, v.ValidatePhone("(01) 234-5678"))
	assert.Error(t, v.ValidatePhone("123"))
	assert.Error(t, v.ValidatePhone("abcdefgh"))
}

func TestValidateName(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidateName("Juan Carlos", "nombre"))
	assert.NoError(t, v.ValidateName("Ñahui-Quispe", "apellido"))
	assert.Error(t, v.ValidateName("", "nombre"))
	assert.Error(t, v.ValidateName("X", "nombre"))
	assert.Error(t, v.ValidateName("Juan123", "nombre"))
}

func TestValidateSexo(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidateSexo("M"))
	assert.NoError(t, v.ValidateSexo(" f "))
	assert.Error(t, v.ValidateSexo("X"))
	assert.Error(t, v.ValidateSexo(""))
}
