package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/auth-service/internal/application/auth"
	"github.com/jhoicas/auth-service/internal/application/usecase"
	"github.com/jhoicas/auth-service/internal/domain/entity"
	"github.com/jhoicas/auth-service/internal/infrastructure/postgres"
	"github.com/jhoicas/auth-service/internal/infrastructure/security"
	httpRouter "github.com/jhoicas/auth-service/internal/interfaces/http"
	"github.com/jhoicas/auth-service/pkg/config"
	"github.com/jhoicas/auth-service/pkg/jwt"
	"github.com/jhoicas/auth-service/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Clave JWT ausente o corta: error de despliegue, abortar en el arranque
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Sonda de arranque: el onboarding depende del rol reservado. Si falta,
	// el despliegue está roto y es mejor fallar fuerte aquí que por petición.
	probeCtx, cancelProbe := context.WithTimeout(ctx, 5*time.Second)
	adminRole, err := roleRepo.GetByName(probeCtx, entity.RoleAdminCompany)
	cancelProbe()
	if err != nil {
		log.Fatal().Err(err).Msg("verificación del rol reservado")
	}
	if adminRole == nil {
		log.Fatal().Str("role", entity.RoleAdminCompany).Msg("el rol reservado no está configurado en la base de datos")
	}

	jwtCfg := jwt.Config{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
	}
	hasher := security.NewArgon2Hasher(security.DefaultArgon2Params())

	authUC := auth.NewAuthUseCase(txRunner, hasher, jwtCfg, log)
	companyUC := usecase.NewCompanyUseCase(companyRepo, log)
	roleUC := usecase.NewRoleUseCase(roleRepo, log)
	userUC := usecase.NewUserUseCase(userRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Auth Service API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		CompanyUC: companyUC,
		RoleUC:    roleUC,
		UserUC:    userUC,
		JWTConfig: jwtCfg,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
