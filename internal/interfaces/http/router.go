package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/auth-service/internal/application/auth"
	"github.com/jhoicas/auth-service/internal/application/usecase"
	"github.com/jhoicas/auth-service/internal/domain/entity"
	"github.com/jhoicas/auth-service/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	CompanyUC *usecase.CompanyUseCase
	RoleUC    *usecase.RoleUseCase
	UserUC    *usecase.UserUseCase
	JWTConfig jwt.Config
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Onboarding (público): crea el primer admin de una empresa y emite token
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/users/register-admin", authHandler.RegisterAdmin)

	// Companies: creación y lectura públicas (preceden al onboarding)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)

	// Mutaciones de empresa: requieren token de admin de empresa
	adminOnly := []fiber.Handler{AuthMiddleware(deps.JWTConfig), RequireRole(entity.RoleAdminCompany)}
	companies.Put("/:id", append(adminOnly, companyHandler.Update)...)
	companies.Post("/:id/deactivate", append(adminOnly, companyHandler.Deactivate)...)
	companies.Post("/:id/reactivate", append(adminOnly, companyHandler.Reactivate)...)
	companies.Delete("/:id", append(adminOnly, companyHandler.Delete)...)

	// Roles: gestión solo para administradores
	roles := api.Group("/roles", AuthMiddleware(deps.JWTConfig), RequireRole(entity.RoleAdminCompany))
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Post("/", roleHandler.Create)
	roles.Get("/", roleHandler.List)
	roles.Get("/:id", roleHandler.GetByID)
	roles.Put("/:id", roleHandler.Update)
	roles.Delete("/:id", roleHandler.Delete)

	// Users: lectura autenticada
	users := api.Group("/users", AuthMiddleware(deps.JWTConfig))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/:id", userHandler.GetByID)
}
