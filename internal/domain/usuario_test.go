package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizarRol(t *testing.T) {
	casos := []struct {
		valor    string
		esperado Rol
		ok       bool
	}{
		{"consulta", RolConsulta, true},
		{"digitador", RolDigitador, true},
		{"administrador", RolAdministrador, true},
		{"admin", RolAdministrador, true},
		{"user", RolConsulta, true},
		{"superusuario", "", false},
		{"", "", false},
	}

	for _, c := range casos {
		rol, ok := NormalizarRol(c.valor)
		assert.Equal(t, c.ok, ok, "valor %q", c.valor)
		assert.Equal(t, c.esperado, rol, "valor %q", c.valor)
	}
}
