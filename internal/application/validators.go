package application

import (
	"fmt"
	"regexp"
	"strings"
)

// Validator contiene funciones de validación de datos
type Validator struct{}

var (
	dniRegex   = regexp.MustCompile(`^[0-9]{8}$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?\d{7,15}$`)
	nameRegex  = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s\-']+$`)
)

// ValidateDNI valida que el DNI sea exactamente 8 dígitos numéricos
func (v *Validator) ValidateDNI(dni string) error {
	if dni == "" {
		return fmt.Errorf("el DNI es requerido")
	}

	if !dniRegex.MatchString(dni) {
		return fmt.Errorf("el DNI '%s' debe tener exactamente 8 dígitos", dni)
	}

	return nil
}

// ValidateEmail valida el formato de un email
func (v *Validator) ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("el email es requerido")
	}

	if !emailRegex.MatchString(email) {
		return fmt.Errorf("el formato del email '%s' no es válido", email)
	}

	return nil
}

// ValidatePhone valida el formato de un teléfono
func (v *Validator) ValidatePhone(phone string) error {
	if phone == "" {
		return fmt.Errorf("el teléfono es requerido")
	}

	// Limpiar espacios, guiones y paréntesis
	cleanPhone := strings.ReplaceAll(phone, " ", "")
	cleanPhone = strings.ReplaceAll(cleanPhone, "-", "")
	cleanPhone = strings.ReplaceAll(cleanPhone, "(", "")
	cleanPhone = strings.ReplaceAll(cleanPhone, ")", "")

	if !phoneRegex.MatchString(cleanPhone) {
		return fmt.Errorf("el teléfono '%s' debe tener entre 7 y 15 dígitos", phone)
	}

	return nil
}

// ValidateName valida que un nombre no esté vacío y tenga formato válido
func (v *Validator) ValidateName(name, fieldName string) error {
	if name == "" {
		return fmt.Errorf("el %s es requerido", fieldName)
	}

	name = strings.TrimSpace(name)

	if len(name) < 2 {
		return fmt.Errorf("el %s debe tener al menos 2 caracteres", fieldName)
	}

	if len(name) > 50 {
		return fmt.Errorf("el %s no puede tener más de 50 caracteres", fieldName)
	}

	if !nameRegex.MatchString(name) {
		return fmt.Errorf("el %s contiene caracteres no válidos", fieldName)
	}

	return nil
}

// ValidateSexo valida que el sexo sea M o F
func (v *Validator) ValidateSexo(sexo string) error {
	sexo = strings.ToUpper(strings.TrimSpace(sexo))

	if sexo != "M" && sexo != "F" {
		return fmt.Errorf("el sexo debe ser 'M' (masculino) o 'F' (femenino)")
	}

	return nil
}

// FormatValidationErrors formatea una lista de errores en un mensaje legible
func (v *Validator) FormatValidationErrors(errors []error) string {
	if len(errors) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Se encontraron los siguientes errores en los datos proporcionados:\n\n")

	for i, err := range errors {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, err.Error()))
	}

	sb.WriteString("\nPor favor, corrige estos datos y vuelve a intentarlo.")

	return sb.String()
}
