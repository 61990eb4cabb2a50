package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/toolvault/catalog-api/internal/api/handler"
	"github.com/toolvault/catalog-api/internal/api/middleware"
	"github.com/toolvault/catalog-api/internal/core/domain"
	"github.com/toolvault/catalog-api/internal/core/ports"
	"github.com/toolvault/catalog-api/internal/infrastructure/http/handlers"
)

// Dependencies carries everything the router needs to wire handlers and
// middleware. Services are constructed in main so the scheduler can share
// them.
type Dependencies struct {
	AuthService         ports.AuthService
	ProposalService     ports.ProposalService
	ToolService         ports.ToolService
	NotificationService ports.NotificationService
	Codec               ports.TokenCodec
	Clients             ports.ClientRepository
	DB                  *mongo.Database
	Redis               *redis.Client
	Log                 zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("catalog"))
	e.Use(middleware.Authenticate(deps.Codec, deps.Clients, deps.Log))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService, deps.Codec)
	proposalHandler := handler.NewProposalHandler(deps.ProposalService)
	toolHandler := handler.NewToolHandler(deps.ToolService)
	notificationHandler := handler.NewNotificationHandler(deps.NotificationService)
	healthHandler := handlers.NewHealth(deps.DB, deps.Redis)

	// --- Public routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated routes ---
	e.GET("/auth/me", authHandler.Me, middleware.RequireAuth())

	apiGroup := e.Group("/api", middleware.RequireAuth())

	apiGroup.GET("/tools", toolHandler.List)
	apiGroup.GET("/tools/:toolId", toolHandler.Get)
	apiGroup.PUT("/tools/:toolId", toolHandler.Update)

	apiGroup.GET("/proposals/all", proposalHandler.List)
	apiGroup.GET("/proposals/:proposalId", proposalHandler.Get)
	apiGroup.POST("/proposals/create", proposalHandler.Create)

	apiGroup.GET("/notifications/clients/:clientId", notificationHandler.ListByClient)
	apiGroup.PATCH("/notifications/:notificationId/read", notificationHandler.MarkRead)

	// --- Admin-only routes ---
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	apiGroup.PATCH("/proposals/:proposalId/accept", proposalHandler.Accept, adminOnly)
	apiGroup.PATCH("/proposals/:proposalId/refuse", proposalHandler.Refuse, adminOnly)
	apiGroup.DELETE("/tools/:toolId", toolHandler.Delete, adminOnly)

	return e
}
