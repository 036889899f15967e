// Package internal bootstraps the gateway and the backend services.
package internal

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"calendar-server/internal/config"
	"calendar-server/internal/managers"
	"calendar-server/internal/migrations"
	"calendar-server/internal/routing"
)

const (
	envFile         = ".env"
	shutdownTimeout = 10 * time.Second
)

// Service names a backend binary.
type Service string

const (
	AuthService   Service = "auth"
	EventsService Service = "events"
	TodosService  Service = "todos"
)

// RunGateway starts the API gateway and blocks until it is shut down.
func RunGateway() {
	cfg := loadConfig("8000")

	router, err := routing.InitGatewayRouter(cfg)
	if err != nil {
		log.Fatal("Error initializing gateway: ", err)
	}
	log.Info("Initialized gateway router")

	serve(cfg, router)
}

// RunService starts one of the backend services and blocks until it is shut down.
// Every service applies the pending migrations before serving unless RUN_MIGRATIONS is false.
func RunService(service Service, defaultPort string) {
	cfg := loadConfig(defaultPort)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	pool, err := managers.ConnectDatabase(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := migrations.RunMigrations(context.Background(), pool); err != nil {
			log.Fatal(err)
		}
	}

	databaseMgr := managers.NewDatabaseManager(pool)

	jwtMgr, err := managers.NewJWTManager(cfg)
	if err != nil {
		log.Fatal("Error initializing JWT manager: ", err)
	}

	var router *gin.Engine
	switch service {
	case AuthService:
		router = routing.InitAuthRouter(databaseMgr, jwtMgr, managers.NewPasswordManager(cfg))
	case EventsService:
		router = routing.InitEventsRouter(databaseMgr, jwtMgr)
	case TodosService:
		router = routing.InitTodosRouter(databaseMgr, jwtMgr)
	default:
		log.Fatalf("Unknown service %q", service)
	}
	log.Infof("Initialized %s router", service)

	serve(cfg, router)
}

func loadConfig(defaultPort string) *config.Config {
	if err := godotenv.Load(envFile); err != nil {
		log.Info("No .env file found, using environment variables from system")
	} else {
		log.Info("Loaded environment variables from .env file")
	}

	cfg := config.Load(defaultPort)
	setLogLevel(cfg.LogLevel)

	gin.SetMode(cfg.GinMode())
	return cfg
}

// serve runs the HTTP server until SIGINT or SIGTERM, then drains in-flight requests.
func serve(cfg *config.Config, handler http.Handler) {
	server := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Starting server on port %s...", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Error starting server: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Error shutting down server: ", err)
	}
}

func setLogLevel(logLevel string) {
	switch logLevel {
	case "DEBUG":
		log.SetLevel(log.DebugLevel)
	case "INFO":
		log.SetLevel(log.InfoLevel)
	case "WARN":
		log.SetLevel(log.WarnLevel)
	case "ERROR":
		log.SetLevel(log.ErrorLevel)
	case "FATAL":
		log.SetLevel(log.FatalLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	log.SetReportCaller(true)

	log.SetOutput(os.Stdout)
}
