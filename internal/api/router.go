package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/quizdeck/accounts-service/docs"
	"github.com/quizdeck/accounts-service/internal/api/handler"
	"github.com/quizdeck/accounts-service/internal/api/middleware"
	"github.com/quizdeck/accounts-service/internal/core/domain"
	"github.com/quizdeck/accounts-service/internal/core/ports"
	"github.com/quizdeck/accounts-service/internal/core/service"
	"github.com/quizdeck/accounts-service/internal/core/validation"
	mongostore "github.com/quizdeck/accounts-service/internal/infrastructure/db/mongo"
	redisstore "github.com/quizdeck/accounts-service/internal/infrastructure/db/redis"
	"github.com/quizdeck/accounts-service/internal/infrastructure/security"
	"github.com/quizdeck/accounts-service/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; login throttling is then disabled.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	store := mongostore.NewUserRepository(db)
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	signer := security.NewJWTSigner(cfg.JWTSecret)

	var throttle ports.LoginThrottle
	if rdb != nil {
		throttle = redisstore.NewLoginThrottle(rdb)
	}

	rules := validation.NewRules(store)
	accounts := service.NewAccountService(store, hasher, rules, log)
	auth := service.NewAuthService(store, hasher, signer, throttle, cfg.TokenTTL, log)

	authHandler := handler.NewAuthHandler(accounts, auth)
	accountHandler := handler.NewAccountHandler(accounts)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Account routes (token required) ---
	g := e.Group("/accounts", middleware.Auth(signer))
	g.GET("/me", accountHandler.Me)
	g.PUT("/:id/profile", accountHandler.UpdateProfile)
	g.PUT("/:id/password", accountHandler.ChangePassword)
	g.GET("", accountHandler.List, middleware.RBAC(string(domain.RoleAdmin)))

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
