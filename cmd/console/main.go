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

	"github.com/portusapp/portus-console/internal/application/chat"
	"github.com/portusapp/portus-console/internal/application/refresh"
	"github.com/portusapp/portus-console/internal/application/report"
	"github.com/portusapp/portus-console/internal/application/session"
	"github.com/portusapp/portus-console/internal/application/usecase"
	"github.com/portusapp/portus-console/internal/infrastructure/fleetapi"
	infrapdf "github.com/portusapp/portus-console/internal/infrastructure/pdf"
	httpRouter "github.com/portusapp/portus-console/internal/interfaces/http"
	"github.com/portusapp/portus-console/pkg/config"
	"github.com/portusapp/portus-console/pkg/logger"
)

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
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("iniciando consola")

	client := fleetapi.NewClient(cfg.Upstream, log)
	chassiRepo := fleetapi.NewChassiGateway(client)
	lkwRepo := fleetapi.NewLkwGateway(client)
	fahrerRepo := fleetapi.NewFahrerGateway(client)
	userGateway := fleetapi.NewUserGateway(client)
	messageRepo := fleetapi.NewMessageGateway(client)

	chassiUC := usecase.NewChassiUseCase(chassiRepo, log)
	lkwUC := usecase.NewLkwUseCase(lkwRepo, log)
	fahrerUC := usecase.NewFahrerUseCase(fahrerRepo, log)
	sessionSvc := session.NewService(userGateway, cfg.Session, log)
	chatManager := chat.NewManager(messageRepo, cfg.Refresh.ChatPoll, log)
	transcriptUC := chat.NewTranscriptUseCase(chassiRepo, messageRepo, log)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := report.NewUseCase(chassiRepo, lkwRepo, pdfGenerator, log)

	// Recarga periódica de los listados en segundo plano.
	rootCtx, stopRefresh := context.WithCancel(context.Background())
	refresher := refresh.New(cfg.Refresh.ListInterval, log,
		refresh.Loader{Name: "chassi", Load: func(ctx context.Context) error {
			_, err := chassiUC.Load(ctx)
			return err
		}},
		refresh.Loader{Name: "lkw", Load: func(ctx context.Context) error {
			_, err := lkwUC.Load(ctx)
			return err
		}},
		refresh.Loader{Name: "fahrer", Load: func(ctx context.Context) error {
			_, err := fahrerUC.Load(ctx)
			return err
		}},
	)
	refresher.Start(rootCtx)

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
		Title:    "Portus Console API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ChassiUC:   chassiUC,
		LkwUC:      lkwUC,
		FahrerUC:   fahrerUC,
		Session:    sessionSvc,
		Chat:       chatManager,
		Transcript: transcriptUC,
		Report:     reportUC,
		CookieTTL:  cfg.Session.Expiration,
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

	stopRefresh()
	chatManager.CloseAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("consola detenida")
}
