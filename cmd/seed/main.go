package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"erp-dashboard/internal/config"
	"erp-dashboard/internal/database"
	"erp-dashboard/internal/models"
	"erp-dashboard/internal/services"
	"erp-dashboard/internal/validation"
)

func main() {
	defaults := models.DefaultSampleDataOptions()
	opts := models.SampleDataOptions{}
	flag.IntVar(&opts.Projects, "projects", defaults.Projects, "projects to generate")
	flag.IntVar(&opts.TransactionsPerMonth, "transactions-per-month", defaults.TransactionsPerMonth, "transactions per month")
	flag.IntVar(&opts.Months, "months", defaults.Months, "months of transaction history ending this month")
	flag.IntVar(&opts.Invoices, "invoices", defaults.Invoices, "invoices to generate")
	flag.IntVar(&opts.Alerts, "alerts", defaults.Alerts, "unread alerts to generate")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed; reuse it to reproduce a dataset")
	flag.Parse()

	_ = godotenv.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := validation.GetValidator().Struct(opts); err != nil {
		logger.Error("invalid seed options", "error", err)
		os.Exit(2)
	}

	if err := run(context.Background(), opts, *seed); err != nil {
		if errors.Is(err, database.ErrAlreadySeeded) {
			logger.Warn("database already has data, nothing seeded")
			return
		}
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts models.SampleDataOptions, seed int64) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	data := services.NewSampleDataGenerator(seed, time.Now().UTC()).Generate(opts)
	if err := db.SeedSampleData(ctx, data); err != nil {
		return err
	}

	slog.Info("seeded sample data",
		"seed", seed,
		"projects", len(data.Projects),
		"transactions", len(data.Transactions),
		"invoices", len(data.Invoices),
		"alerts", len(data.Alerts),
	)
	return nil
}
