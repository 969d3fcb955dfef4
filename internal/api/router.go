package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/financetrack/finance-api/internal/api/handler"
	"github.com/financetrack/finance-api/internal/api/middleware"
	"github.com/financetrack/finance-api/internal/core/service"
	mongodb "github.com/financetrack/finance-api/internal/infrastructure/db/mongo"
	redisdb "github.com/financetrack/finance-api/internal/infrastructure/db/redis"
)

// Options carries everything the router needs to assemble the service.
type Options struct {
	Mongo     *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("finance"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(opts.Mongo)
	entryRepo := mongodb.NewEntryRepository(opts.Mongo)
	userCache := redisdb.NewUserCache(opts.Redis, opts.Logger)
	tokens := service.NewJWTTokenService(opts.JWTSecret, opts.TokenTTL)
	hasher := service.NewBcryptHasher()
	authService := service.NewAuthService(userRepo, hasher, tokens, userCache, opts.Logger)
	entryService := service.NewEntryService(entryRepo, opts.Logger)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	entryHandler := handler.NewEntryHandler(entryService)
	requireAuth := middleware.Auth(tokens)

	// --- Open routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"msg": "welcome to the api"})
	})
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/create/entry", entryHandler.Create)
	e.POST("/remove/expends/:id", entryHandler.Remove)

	// --- Private routes ---
	e.GET("/user/:id", userHandler.Get, requireAuth)

	// --- Health probes ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(opts.Mongo, opts.Redis).Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
