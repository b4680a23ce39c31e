package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	"invoice-service/internal/config"
	"invoice-service/internal/database/minio"
	"invoice-service/internal/database/postgres"
	"invoice-service/internal/database/redis"
	"invoice-service/internal/handlers"
	"invoice-service/internal/pdf"
	"invoice-service/internal/repository"
	"invoice-service/internal/services"
	"invoice-service/internal/templates"
)

func setupLogging() (*os.File, error) {
	logDir := filepath.Join("/invoicing", "log", "invoice_service")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	logFile := filepath.Join(logDir, fmt.Sprintf("log_%s.log", time.Now().Format("2006-01-02")))
	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	handler := slog.NewTextHandler(io.MultiWriter(os.Stdout, file), nil)
	slog.SetDefault(slog.New(handler))

	return file, nil
}

func main() {
	logFile, err := setupLogging()
	if err != nil {
		fmt.Printf("Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	cfg := config.New()

	slog.Info("connecting to PostgreSQL",
		"host", cfg.PostgresCfg.Host,
		"port", cfg.PostgresCfg.Port,
		"user", cfg.PostgresCfg.Username,
		"dbname", cfg.PostgresCfg.DBname)
	db, err := postgres.ConnectAndCreateDB(cfg.PostgresCfg)
	if err != nil {
		slog.Error("error connect to database", "error", err)
		// Repositories capture the handle below, so wiring has to wait for a
		// live connection instead of retrying in the background.
		postgres.RetryConnectOnFailed(30*time.Second, &db, cfg.PostgresCfg)
	}

	var logoFetcher templates.LogoFetcher = templates.NewHTTPLogoFetcher(15 * time.Second)
	redisClient, err := redis.NewRedisClient(cfg.RedisCfg)
	if err != nil {
		slog.Warn("redis unavailable, logo caching disabled", "error", err)
	} else {
		defer redisClient.Close()
		ttl, err := time.ParseDuration(cfg.RenderCfg.LogoFetchTTL)
		if err != nil {
			slog.Warn("invalid LOGO_CACHE_TTL, using 1h", "value", cfg.RenderCfg.LogoFetchTTL)
			ttl = time.Hour
		}
		logoFetcher = templates.NewCachedLogoFetcher(logoFetcher, redisClient.GetClient(), ttl)
	}

	var archiver *minio.MinioClient
	archiver, err = minio.NewMinioClient(cfg.MinioCfg)
	if err != nil {
		slog.Warn("minio unavailable, document archival disabled", "error", err)
		archiver = nil
	}

	clientRepo := repository.NewClientRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	productRepo := repository.NewProductRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	invoiceService := services.NewInvoiceService(invoiceRepo, clientRepo, companyRepo)

	registry := templates.NewRegistry(logoFetcher)
	rasterizer := pdf.NewWkhtmltoimageRasterizer(cfg.RenderCfg.RasterizerBin)
	generator := pdf.NewGenerator(rasterizer)

	var documentService *services.DocumentService
	if archiver != nil {
		documentService = services.NewDocumentService(invoiceService, registry, generator, archiver, minio.Storage.InvoiceDocuments)
	} else {
		documentService = services.NewDocumentService(invoiceService, registry, generator, nil, "")
	}

	app := fiber.New()
	app.Get("/checkhealth", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Invoice service is healthy")
	})

	handlers.NewClientHandler(clientRepo).Register(app)
	handlers.NewCompanyHandler(companyRepo).Register(app)
	handlers.NewProductHandler(productRepo).Register(app)
	handlers.NewInvoiceHandler(invoiceService, documentService).Register(app)

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "port", cfg.Port)
		if err := app.Listen(fmt.Sprintf("0.0.0.0:%s", cfg.Port)); err != nil {
			slog.Error("error starting server", "error", err)
			os.Exit(1)
		}
	}()

	<-shutdownChan
	slog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		slog.Error("error during shutdown", "error", err)
	}
}
