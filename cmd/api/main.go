package main

import (
	"agent-portfolio-app/config"
	"agent-portfolio-app/handlers"
	"agent-portfolio-app/middleware"
	"agent-portfolio-app/services"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/klauspost/compress/gzhttp"
	"github.com/spf13/pflag"
)

const gzipETagSuffix = "-gzip"

func NewRouter(server *gin.Engine, pageHandler *handlers.PageHandler) {
	server.Use(middleware.RequestIDMiddleware())
	server.Use(middleware.SecurityHeadersMiddleware())
	server.Use(gin.Logger())
	server.Use(gin.Recovery())

	// ===== PUBLIC:: page routings ====== //
	server.GET("/", pageHandler.Catalog)
	server.GET(services.IntakePath, pageHandler.Intake)
	server.POST(services.IntakePath, pageHandler.SubmitIntake)

	server.GET("/healthz", pageHandler.Health)
}

// NewHandler builds the full HTTP handler for cfg
func NewHandler(cfg *config.AppConfig) (http.Handler, error) {
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}

	renderService, err := services.NewRenderService(cfg.Intake)
	if err != nil {
		return nil, err
	}

	server := gin.New()
	NewRouter(server, handlers.NewPageHandler(renderService, catalog))
	log.Printf("Serving %d agents", catalog.Len())

	if cfg.EnableGzip {
		// gzip and identity bodies must not share a strong entity tag
		wrapper, err := gzhttp.NewWrapper(gzhttp.SuffixETag(gzipETagSuffix))
		if err != nil {
			return nil, err
		}
		return wrapper(server), nil
	}
	return server, nil
}

// applyFlags lets command-line flags override environment configuration
func applyFlags(cfg *config.AppConfig, args []string) error {
	flagSet := pflag.NewFlagSet("agent-portfolio", pflag.ContinueOnError)
	flagSet.StringVar(&cfg.Port, "port", cfg.Port, "port to listen on (env PORT)")
	flagSet.StringVar(&cfg.CatalogFile, "catalog", cfg.CatalogFile, "catalog file to serve instead of the built-in one (env CATALOG_FILE)")
	flagSet.StringVar(&cfg.Intake.Endpoint, "intake-endpoint", cfg.Intake.Endpoint, "endpoint the intake form redirects to (env INTAKE_ENDPOINT)")
	flagSet.BoolVar(&cfg.EnableGzip, "gzip", cfg.EnableGzip, "compress responses (env ENABLE_GZIP)")
	return flagSet.Parse(args)
}

// Main function
func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file:", err)
	}

	cfg := config.LoadAppConfig()
	if err := applyFlags(cfg, os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		log.Fatalf("Invalid arguments: %v", err)
	}

	handler, err := NewHandler(cfg)
	if err != nil {
		log.Fatal("Could not initialize server: ", err)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Portfolio server started on port %s", cfg.Port)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
