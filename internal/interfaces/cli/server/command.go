package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	customerusecases "flyadmin/internal/application/customer/usecases"
	dashboardusecases "flyadmin/internal/application/dashboard/usecases"
	supplierusecases "flyadmin/internal/application/supplier/usecases"
	ticketusecases "flyadmin/internal/application/ticket/usecases"
	"flyadmin/internal/infrastructure/config"
	"flyadmin/internal/infrastructure/database"
	"flyadmin/internal/infrastructure/extraction"
	"flyadmin/internal/infrastructure/kvstore"
	"flyadmin/internal/infrastructure/repository"
	httprouter "flyadmin/internal/interfaces/http"
	customerhandlers "flyadmin/internal/interfaces/http/handlers/customer"
	dashboardhandlers "flyadmin/internal/interfaces/http/handlers/dashboard"
	supplierhandlers "flyadmin/internal/interfaces/http/handlers/supplier"
	tickethandlers "flyadmin/internal/interfaces/http/handlers/ticket"
	"flyadmin/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the FlyAdmin HTTP server with the configured storage backend.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server", "environment", env, "storage_driver", cfg.Storage.Driver)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	store, cleanup, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to open storage backend: %w", err)
	}
	defer cleanup()

	log := logger.NewLogger()

	ticketRepo := repository.NewTicketRepository(store, log)
	customerRepo := repository.NewCustomerRepository(store, log)
	supplierRepo := repository.NewSupplierRepository(store, log)

	var extractor extraction.Service
	if cfg.Gemini.APIKey != "" {
		extractor, err = extraction.NewGeminiExtractor(cmd.Context(), &cfg.Gemini, log)
		if err != nil {
			return fmt.Errorf("failed to initialize extraction service: %w", err)
		}
	} else {
		logger.Warn("gemini API key not configured, document extraction is disabled")
		extractor = extraction.DisabledService{}
	}

	ticketHandler := tickethandlers.NewTicketHandler(
		ticketusecases.NewCreateTicketUseCase(ticketRepo, log),
		ticketusecases.NewUpdateTicketUseCase(ticketRepo, log),
		ticketusecases.NewDeleteTicketUseCase(ticketRepo, log),
		ticketusecases.NewListTicketsUseCase(ticketRepo, customerRepo, supplierRepo, log),
		ticketusecases.NewExtractTicketDataUseCase(extractor, log),
	)
	customerHandler := customerhandlers.NewCustomerHandler(
		customerusecases.NewCreateCustomerUseCase(customerRepo, log),
		customerusecases.NewListCustomersUseCase(customerRepo, log),
	)
	supplierHandler := supplierhandlers.NewSupplierHandler(
		supplierusecases.NewCreateSupplierUseCase(supplierRepo, log),
		supplierusecases.NewListSuppliersUseCase(supplierRepo, log),
	)
	dashboardHandler := dashboardhandlers.NewDashboardHandler(
		dashboardusecases.NewGetDashboardStatsUseCase(ticketRepo, customerRepo, log),
		dashboardusecases.NewListRemindersUseCase(ticketRepo, log),
	)

	router := httprouter.NewRouter(ticketHandler, customerHandler, supplierHandler, dashboardHandler, log)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server exited")
	return nil
}

// openStore builds the key-value medium selected by storage.driver and
// returns it with a cleanup func for the underlying connection.
func openStore(ctx context.Context, cfg *config.Config) (kvstore.Store, func(), error) {
	switch cfg.Storage.Driver {
	case "sqlite", "mysql", "":
		if err := database.Init(&cfg.Storage); err != nil {
			return nil, nil, err
		}
		store, err := kvstore.NewGormStore(database.Get())
		if err != nil {
			_ = database.Close()
			return nil, nil, err
		}
		return store, func() {
			if err := database.Close(); err != nil {
				logger.Error("failed to close database", "error", err)
			}
		}, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return kvstore.NewRedisStore(client), func() {
			if err := client.Close(); err != nil {
				logger.Error("failed to close redis client", "error", err)
			}
		}, nil

	case "memory":
		return kvstore.NewMemoryStore(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unsupported storage driver: %s", cfg.Storage.Driver)
	}
}

func mapEnvToGinMode(env string) string {
	switch env {
	case "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
