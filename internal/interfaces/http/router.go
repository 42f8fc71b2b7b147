package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/portusapp/portus-console/internal/application/chat"
	"github.com/portusapp/portus-console/internal/application/report"
	"github.com/portusapp/portus-console/internal/application/session"
	"github.com/portusapp/portus-console/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ChassiUC   *usecase.ChassiUseCase
	LkwUC      *usecase.LkwUseCase
	FahrerUC   *usecase.FahrerUseCase
	Session    *session.Service
	Chat       *chat.Manager
	Transcript *chat.TranscriptUseCase
	Report     *report.UseCase
	CookieTTL  int // minutos
}

// Router registra las rutas de la consola. Toda petición pasa por la
// carga de sesión; las pantallas de datos exigen sesión y login/registro
// exigen no tenerla, igual que las guardas de navegación del frontend.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())
	app.Use(LoadSession(deps.Session))

	api := app.Group("/api")

	// Auth
	authHandler := NewAuthHandler(deps.Session, deps.CookieTTL)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", AnonymousOnly(), authHandler.Login)
	authGroup.Post("/register", AnonymousOnly(), authHandler.Register)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren cookie de sesión válida)
	protected := api.Group("/", RequireSession())

	protected.Get("/profil", authHandler.Profile)

	// Chassi
	chassis := protected.Group("/chassi")
	chassiHandler := NewChassiHandler(deps.ChassiUC)
	chassis.Get("/", chassiHandler.List)
	chassis.Get("/view", chassiHandler.View)
	chassis.Post("/", chassiHandler.Create)
	chassis.Put("/:id", chassiHandler.Update)
	chassis.Delete("/:id", chassiHandler.Delete)

	// Chat por chassi
	chatHandler := NewChatHandler(deps.Chat, deps.Transcript)
	chassis.Post("/:id/chat", chatHandler.Open)
	chassis.Get("/:id/transcript", chatHandler.Transcript)
	chatGroup := protected.Group("/chat")
	chatGroup.Get("/:dialogID", chatHandler.Snapshot)
	chatGroup.Post("/:dialogID/messages", chatHandler.Send)
	chatGroup.Delete("/:dialogID", chatHandler.Close)

	// LKW
	lkws := protected.Group("/lkw")
	lkwHandler := NewLkwHandler(deps.LkwUC)
	lkws.Get("/", lkwHandler.List)
	lkws.Get("/view", lkwHandler.View)
	lkws.Post("/", lkwHandler.Create)
	lkws.Put("/:id", lkwHandler.Update)
	lkws.Delete("/:id", lkwHandler.Delete)

	// Fahrer
	fahrers := protected.Group("/fahrer")
	fahrerHandler := NewFahrerHandler(deps.FahrerUC)
	fahrers.Get("/", fahrerHandler.List)
	fahrers.Get("/view", fahrerHandler.View)
	fahrers.Post("/", fahrerHandler.Create)
	fahrers.Put("/:id", fahrerHandler.Update)
	fahrers.Delete("/:id", fahrerHandler.Delete)

	// Informe
	reportHandler := NewReportHandler(deps.Report)
	protected.Get("/report/fleet", reportHandler.Fleet)
}
