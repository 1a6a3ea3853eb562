package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"kitchenpos/cmd"
	"kitchenpos/internal/adapters/out/kitchenriders"
	"kitchenpos/internal/adapters/out/memory"
	"kitchenpos/internal/adapters/out/postgres"
	"kitchenpos/internal/catalog"
	"kitchenpos/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "kitchenpos",
		Short:         "Order services for eat-in, takeout and delivery",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newSeedCmd())
	return root
}

// loadConfig reads .env when present, then the environment.
func loadConfig() (cmd.Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cmd.Config{}, fmt.Errorf("loading .env: %w", err)
	}

	cfg := cmd.ConfigFromEnv(os.Getenv).WithDefaults()
	if err := cfg.Validate(); err != nil {
		return cmd.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg cmd.Config) *slog.Logger {
	level, _ := cfg.SlogLevel()
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func openDB(cfg cmd.Config) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return db, nil
}

// openStorage returns the unit of work factory for the configured driver and a
// function releasing whatever it opened.
func openStorage(cfg cmd.Config) (ports.UnitOfWorkFactory, func(), error) {
	if cfg.StorageDriver == cmd.StorageDriverMemory {
		return memory.NewUnitOfWorkFactory(memory.NewStore()), func() {}, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return postgres.NewGormUnitOfWorkFactory(db), closeDB, nil
}

func openDispatcher(cfg cmd.Config, logger *slog.Logger) (ports.DeliveryDispatcher, func(), error) {
	if cfg.DispatchDriver == cmd.DispatchDriverLog {
		return kitchenriders.NewLoggingDispatcher(logger), func() {}, nil
	}

	broker, err := kitchenriders.Connect(cfg.RabbitMQURL, cfg.RabbitMQDeliveryExchange)
	if err != nil {
		return nil, nil, err
	}
	closeMQ := func() {
		_ = broker.Close()
	}
	dispatcher := kitchenriders.NewRabbitMQDispatcher(
		broker.Channel(),
		broker.Confirms(),
		cfg.RabbitMQDeliveryExchange,
		cfg.RabbitMQDeliveryRoutingKey,
		logger,
	)
	return dispatcher, closeMQ, nil
}

func seedCatalog(ctx context.Context, app *cmd.CompositionRoot, path string) error {
	seed, err := catalog.LoadFile(path)
	if err != nil {
		return err
	}
	if err := app.CreateSeedCatalogCommandHandler().Handle(ctx, seed); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}
