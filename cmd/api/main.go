package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sellkit/listing-assistant-api/infrastructure/database/postgres"
	"github.com/sellkit/listing-assistant-api/infrastructure/integrator/ebay"
	"github.com/sellkit/listing-assistant-api/infrastructure/integrator/ebay/ebayclient"
	"github.com/sellkit/listing-assistant-api/infrastructure/integrator/facebook"
	"github.com/sellkit/listing-assistant-api/infrastructure/integrator/facebook/fbclient"
	"github.com/sellkit/listing-assistant-api/infrastructure/integrator/gemini"
	"github.com/sellkit/listing-assistant-api/infrastructure/repository"
	"github.com/sellkit/listing-assistant-api/infrastructure/storage"
	"github.com/sellkit/listing-assistant-api/internal/api"
	"github.com/sellkit/listing-assistant-api/internal/config"
	"github.com/sellkit/listing-assistant-api/internal/scheduler"
	"github.com/sellkit/listing-assistant-api/internal/usecases/analyzing"
	"github.com/sellkit/listing-assistant-api/internal/usecases/authenticating"
	"github.com/sellkit/listing-assistant-api/internal/usecases/listing"
	"github.com/sellkit/listing-assistant-api/internal/usecases/pricing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	listingRepo := repository.NewListingRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	tokenManager := ebayclient.NewTokenManager(cfg)
	ebayClient := ebayclient.NewClient(cfg, tokenManager)
	ebayIntegrator := ebay.New(cfg, ebayClient)

	geminiClient, err := gemini.NewClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize Gemini client")
	}
	geminiIntegrator := gemini.New(geminiClient)

	facebookClient := fbclient.NewClient(cfg)
	facebookIntegrator := facebook.New(cfg, facebookClient)

	uploadStore, err := storage.NewUploadStore(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize upload storage")
	}

	pricer := pricing.NewService(cfg, ebayIntegrator, geminiIntegrator)
	analyzer := analyzing.NewService(geminiIntegrator, uploadStore)
	listingManager := listing.NewService(listingRepo)

	repriceSyncService := scheduler.NewRepriceSyncService(listingRepo, pricer, cfg)
	if err := repriceSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start reprice sync scheduler")
	}

	server, err := api.New(
		cfg,
		authenticator,
		pricer,
		analyzer,
		listingManager,
		facebookIntegrator,
		uploadStore,
		repriceSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
