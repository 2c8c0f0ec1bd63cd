package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/auth-service/internal/domain/entity"
)

// ValidateRole valida el rol y devuelve la lista de violaciones (vacía = válido).
func ValidateRole(r *entity.Role) []string {
	var errs []string
	if r == nil {
		return []string{"El rol es requerido."}
	}

	name := strings.TrimSpace(r.Name)
	if name == "" {
		errs = append(errs, "El nombre del rol es requerido.")
	} else if n := utf8.RuneCountInString(name); n < 3 || n > 50 {
		errs = append(errs, "El nombre del rol debe tener entre 3 y 50 caracteres.")
	}

	if utf8.RuneCountInString(r.Description) > 200 {
		errs = append(errs, "La descripción del rol no puede exceder los 200 caracteres.")
	}

	return errs
}
