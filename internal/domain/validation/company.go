// Package validation contiene validadores puros de payloads: reciben la
// entidad, no mutan nada y devuelven todas las violaciones encontradas
// (no solo la primera) para que el llamador las agregue en un solo mensaje.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/auth-service/internal/domain/entity"
)

var (
	emailRe  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	rucRe    = regexp.MustCompile(`^[0-9]{11}$`)
	digitsRe = regexp.MustCompile(`^[0-9]{8,15}$`)
)

// NormalizePhone elimina espacios, guiones y paréntesis. Es idempotente y se
// aplica antes de validar y antes de persistir, para que los teléfonos
// almacenados ya estén en forma canónica.
func NormalizePhone(phone string) string {
	r := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	return r.Replace(phone)
}

// ValidEmail informa si el correo cumple el patrón estándar.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidateCompany valida la empresa y devuelve la lista de violaciones
// (vacía = válida). El teléfono se evalúa sobre su forma normalizada.
func ValidateCompany(c *entity.Company) []string {
	var errs []string
	if c == nil {
		return []string{"La empresa es requerida."}
	}

	// Los límites cuentan caracteres, no bytes: "ñoño" son 4 caracteres.
	name := strings.TrimSpace(c.Name)
	if name == "" {
		errs = append(errs, "El nombre de la empresa es requerido.")
	} else if n := utf8.RuneCountInString(name); n < 5 || n > 100 {
		errs = append(errs, "El nombre de la empresa debe tener entre 5 y 100 caracteres.")
	}

	addr := strings.TrimSpace(c.Address)
	if addr == "" {
		errs = append(errs, "La dirección es requerida.")
	} else if n := utf8.RuneCountInString(addr); n < 5 || n > 200 {
		errs = append(errs, "La dirección debe tener entre 5 y 200 caracteres.")
	}

	if c.Email != "" && !ValidEmail(c.Email) {
		errs = append(errs, "El correo electrónico no es válido.")
	}

	if c.Phone != "" && !digitsRe.MatchString(NormalizePhone(c.Phone)) {
		errs = append(errs, "El teléfono debe reducirse a entre 8 y 15 dígitos.")
	}

	if c.RUC != "" && !rucRe.MatchString(c.RUC) {
		errs = append(errs, "El RUC debe tener 11 dígitos.")
	}

	return errs
}
