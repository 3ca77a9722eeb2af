package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"erp-dashboard/internal/config"
	"erp-dashboard/internal/database"
)

func main() {
	steps := flag.Int("steps", 1, "number of migrations to roll back with the down command")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: migrate [-steps n] up|down|status|seed\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	_ = godotenv.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(context.Background(), flag.Arg(0), *steps); err != nil {
		slog.Error("migrate failed", "command", flag.Arg(0), "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, steps int) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db, &cfg.Database)
	if err := runner.WaitForDatabase(ctx); err != nil {
		return err
	}

	switch command {
	case "up":
		return runner.Up()
	case "down":
		return runner.Down(steps)
	case "status":
		version, dirty, err := runner.Status()
		if err != nil {
			return err
		}
		slog.Info("migration status", "version", version, "dirty", dirty)
		return nil
	case "seed":
		return runner.LoadSeeds(ctx)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
