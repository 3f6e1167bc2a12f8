package main // Entry point package

import (
	"context" // context for the startup database connection
	"log"     // Logging library
	"time"    // timeouts for startup operations

	"github.com/joho/godotenv"    // loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/current-cruiser/internal/config"   // Internal config loader
	"github.com/iliyamo/current-cruiser/internal/database" // MongoDB connection helper
	"github.com/iliyamo/current-cruiser/internal/handler"
	"github.com/iliyamo/current-cruiser/internal/middleware"
	"github.com/iliyamo/current-cruiser/internal/queue"
	"github.com/iliyamo/current-cruiser/internal/repository"
	"github.com/iliyamo/current-cruiser/internal/router" // Internal router setup
	queue_publisher "github.com/iliyamo/current-cruiser/internal/service"
)

func main() {
	_ = godotenv.Load() // Load .env if present; real env vars win

	cfg := config.Load()                    // Load environment config
	rlcfg := config.LoadRateLimitConfig()   // Per-IP rate limiter settings
	rdb := config.NewRedisClient()          // May be nil; limiter degrades to pass-through

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := database.Open(ctx, cfg.MongoURI, cfg.DBName) // Connect to MongoDB
	if err != nil {
		log.Fatalf("mongodb connect: %v", err)
	}

	users := repository.NewUserRepo(db)
	cars := repository.NewCarRepo(db)
	categories := repository.NewCategoryRepo(db)
	lists := repository.NewListRepo(db)
	errorLogs := repository.NewErrorLogRepo(db)

	auth := handler.NewAuthHandler(cfg, users)
	auth.Publish = queue_publisher.PublishSignupCompleted // signup events, fire-and-forget

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.CORS())
	e.Use(echomw.Secure())
	e.Use(middleware.RateLimit(rlcfg, rdb))
	e.HTTPErrorHandler = middleware.ErrorPipeline(cfg.JWTSecret, errorLogs)

	router.RegisterRoutes(e) // Register application routes
	router.RegisterAuth(e, auth)
	router.RegisterUsers(e, handler.NewUserHandler(users), cfg.JWTSecret)
	router.RegisterCars(e, handler.NewCarHandler(cars), cfg.JWTSecret)
	router.RegisterCategories(e, handler.NewCategoryHandler(categories), cfg.JWTSecret)
	router.RegisterLists(e, handler.NewListHandler(lists), cfg.JWTSecret)

	go func() { // Consume signup.completed events into logs/signup.log
		if err := queue.StartSignupConsumer(); err != nil {
			log.Printf("signup-consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
