// @title         Family Tree API
// @version       1.0
// @description   Backend for the family tree application: user registration/login with bearer-token sessions and per-user tree records.
// @BasePath      /api
// @schemes       http
// @host          localhost:5000
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token in the form "Bearer <JWT>".
package main

import (
	"context"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	swagger "github.com/gofiber/swagger"

	// internal imports
	_ "github.com/jameshwang7534/Family-Tree/docs"

	httpapi "github.com/jameshwang7534/Family-Tree/api/http"
	"github.com/jameshwang7534/Family-Tree/api/http/handlers"
	"github.com/jameshwang7534/Family-Tree/pkg/auth"
	"github.com/jameshwang7534/Family-Tree/pkg/config"
	"github.com/jameshwang7534/Family-Tree/pkg/health"
	healthpg "github.com/jameshwang7534/Family-Tree/pkg/health/checkers"
	"github.com/jameshwang7534/Family-Tree/pkg/repository/memory"
	pgrepo "github.com/jameshwang7534/Family-Tree/pkg/repository/postgres"
	"github.com/jameshwang7534/Family-Tree/pkg/security/jwt"
	"github.com/jameshwang7534/Family-Tree/pkg/storage/postgres"
	"github.com/jameshwang7534/Family-Tree/pkg/tree"
)

func main() {
	app := fiber.New()

	// Load configuration from env/.env
	cfg := config.Load()

	origins := []string{
		cfg.FrontendURL,
		"http://localhost:3000",
		"http://localhost:5173",
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowCredentials: true,
	}))

	// Storage: pgx-backed when DATABASE_URL is set, in-memory otherwise.
	var (
		userRepo auth.UserRepository
		treeRepo tree.Repository
		checkers []health.Checker
	)
	if cfg.DatabaseURL != "" {
		pool, err := postgres.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("postgres connect: %v", err)
		}
		defer pool.Close()

		users, err := pgrepo.NewUserRepository(pool)
		if err != nil {
			log.Fatalf("init user repo: %v", err)
		}
		trees, err := pgrepo.NewTreeRepository(pool)
		if err != nil {
			log.Fatalf("init tree repo: %v", err)
		}
		userRepo, treeRepo = users, trees
		checkers = append(checkers, healthpg.NewPostgresChecker(pool))
	} else {
		log.Println("DATABASE_URL not set, using in-memory storage (cleared on restart)")
		userRepo = memory.NewUserRepository()
		treeRepo = memory.NewTreeRepository()
	}

	// Token service and authorization guard
	tokens := jwt.NewService(cfg.JWTSecret, cfg.TokenLifetime())
	guard := jwt.NewGuard(tokens)

	authUC := auth.NewService(userRepo, tokens)
	authHandler := handlers.NewAuthHandler(authUC, guard)

	treeUC := tree.NewService(treeRepo)
	treeHandler := handlers.NewTreeHandler(treeUC, guard)

	readiness := health.NewService(checkers...)
	healthHandler := handlers.NewHealthHandler(readiness)

	// Register routes
	httpapi.Register(app, authHandler, treeHandler, healthHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	log.Printf("Family Tree backend listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
