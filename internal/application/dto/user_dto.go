package dto

import "time"

// RegisterAdminRequest entrada del onboarding: datos del primer usuario
// administrador de una empresa existente (password en claro, se hashea en el
// caso de uso y nunca se registra en logs).
type RegisterAdminRequest struct {
	CompanyID string `json:"company_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
}

// UserResponse salida de un usuario (sin hash de contraseña).
type UserResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	RoleID    string    `json:"role_id"`
	CompanyID string    `json:"company_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterAdminResponse usuario creado más su token de acceso.
// El token no se persiste; solo se devuelve al crear.
type RegisterAdminResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
