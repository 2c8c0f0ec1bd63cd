package entity

import "time"

// Company representa una empresa/tenant del sistema: el límite de aislamiento
// de los usuarios en el esquema multi-tenant.
type Company struct {
	ID        string
	Name      string // único global (entre activas e inactivas)
	RUC       string // identificador tributario, 11 dígitos, opcional
	Address   string
	Phone     string // ya normalizado (sin espacios, guiones ni paréntesis)
	Email     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
