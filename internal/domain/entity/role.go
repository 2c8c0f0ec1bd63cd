package entity

import "time"

// RoleAdminCompany rol de sistema reservado: el onboarding de una empresa
// depende de que exista. Su ausencia es un error de configuración, no de usuario.
const RoleAdminCompany = "AdminCompany"

// Role representa un rol asignable a usuarios. Inmutable tras la creación
// salvo nombre y descripción. El nombre es único sin distinguir mayúsculas.
type Role struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
