package validation

import (
	"strings"
	"unicode/utf8"
)

// UserDraft datos de usuario antes de asignar identidad, rol y empresa.
// La contraseña viaja en claro solo hasta que el orquestador la hashea.
type UserDraft struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

// ValidateUserDraft valida los datos de un usuario candidato y devuelve la
// lista de violaciones (vacía = válido).
func ValidateUserDraft(d UserDraft) []string {
	var errs []string

	if strings.TrimSpace(d.FirstName) == "" {
		errs = append(errs, "El nombre es obligatorio.")
	} else if utf8.RuneCountInString(d.FirstName) > 100 {
		errs = append(errs, "El nombre no puede exceder los 100 caracteres.")
	}

	if strings.TrimSpace(d.LastName) == "" {
		errs = append(errs, "El apellido es obligatorio.")
	} else if utf8.RuneCountInString(d.LastName) > 100 {
		errs = append(errs, "El apellido no puede exceder los 100 caracteres.")
	}

	if !ValidEmail(d.Email) {
		errs = append(errs, "El correo electrónico no es válido.")
	}

	if utf8.RuneCountInString(strings.TrimSpace(d.Password)) < 8 {
		errs = append(errs, "La contraseña debe tener al menos 8 caracteres.")
	}

	if d.Phone != "" && !digitsRe.MatchString(NormalizePhone(d.Phone)) {
		errs = append(errs, "El teléfono debe reducirse a entre 8 y 15 dígitos.")
	}

	return errs
}
