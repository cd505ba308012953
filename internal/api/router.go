package api

import (
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dogbook/dogbook-api/internal/api/graph"
	"github.com/dogbook/dogbook-api/internal/api/handler"
	"github.com/dogbook/dogbook-api/internal/api/middleware"
	"github.com/dogbook/dogbook-api/internal/auth"
	"github.com/dogbook/dogbook-api/internal/core/service"
	"github.com/dogbook/dogbook-api/internal/infrastructure/config"
	mongodb "github.com/dogbook/dogbook-api/internal/infrastructure/db/mongo"
	redisdb "github.com/dogbook/dogbook-api/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all dependencies wired and all
// routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("dogbook"))

	// --- Dependencies ---
	tokens := auth.NewTokenIssuer(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)

	userRepo := mongodb.NewUserRepository(db)
	dogRepo := mongodb.NewDogRepository(db)
	breedRepo := mongodb.NewBreedRepository(db)
	breedCache := redisdb.NewBreedCache(rdb)

	userService := service.NewUserService(userRepo, tokens, log)
	dogService := service.NewDogService(dogRepo, breedRepo, log)
	breedService := service.NewBreedService(breedRepo, breedCache, log)

	cookie := graph.CookieConfig{Secure: cfg.Production(), MaxAge: cfg.JWT.AccessTTL}
	resolver := graph.NewResolver(userService, dogService, breedService, cookie, log)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}

	e.Use(middleware.Identity(tokens, userRepo, log))

	// --- Routes ---
	graphqlHandler := handler.NewGraphQLHandler(schema)
	e.POST("/graphql", graphqlHandler.Query)

	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e, nil
}
