package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los tres primeros son fallos de regla de negocio y se recuperan localmente
// en el envoltorio Result; ErrRoleNotConfigured indica un despliegue roto y
// ErrStoreUnavailable un fallo de infraestructura.
var (
	ErrCompanyNotFound    = errors.New("la empresa no existe")
	ErrEmailAlreadyExists = errors.New("ya existe un usuario registrado con ese correo")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrRoleNotConfigured  = errors.New("el rol 'AdminCompany' no está configurado")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrStoreUnavailable   = errors.New("almacenamiento no disponible")
)
