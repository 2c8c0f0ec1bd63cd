package entity

import "time"

// User representa un usuario del sistema. Referencia exactamente un Role y
// una Company por id (FK explícitas, sin navegación perezosa). El email es
// único entre todos los usuarios.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string // salida de Argon2id, nunca la contraseña en claro
	Phone        string
	RoleID       string
	CompanyID    string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
