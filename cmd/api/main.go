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

	_ "github.com/koajpc/backoffice-api/docs"
	"github.com/koajpc/backoffice-api/internal/application/auth"
	"github.com/koajpc/backoffice-api/internal/application/usecase"
	"github.com/koajpc/backoffice-api/internal/infrastructure/alegra"
	infrapdf "github.com/koajpc/backoffice-api/internal/infrastructure/pdf"
	"github.com/koajpc/backoffice-api/internal/infrastructure/postgres"
	httpRouter "github.com/koajpc/backoffice-api/internal/interfaces/http"
	"github.com/koajpc/backoffice-api/pkg/config"
	"github.com/koajpc/backoffice-api/pkg/logger"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
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

	if errs := cfg.Validate(); len(errs) > 0 {
		for _, e := range errs {
			log.Error().Msg(e)
		}
		log.Fatal().Msg("configuración incompleta")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	koajCodeRepo := postgres.NewKoajCodeRepository(pool)

	alegraClient := alegra.NewClient(cfg.Alegra)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	koajCodeUC := usecase.NewKoajCodeUseCase(koajCodeRepo)
	closingUC := usecase.NewCashClosingUseCase(cfg.Cash, alegraClient, cfg.Alegra.User, cfg.App.Timezone, log)
	analyticsUC := usecase.NewAnalyticsUseCase(alegraClient, alegraClient, log)

	pdfGenerator := infrapdf.NewMarotoClosingGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "KOAJ Backoffice API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		ClosingUC:   closingUC,
		KoajCodeUC:  koajCodeUC,
		AnalyticsUC: analyticsUC,
		ClosingPDF:  pdfGenerator,
		Alegra:      alegraClient,
		JWTSecret:   cfg.JWT.Secret,
		Version:     version,
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
