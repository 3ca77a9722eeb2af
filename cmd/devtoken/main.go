package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"erp-dashboard/internal/config"
	"erp-dashboard/internal/models"
	"erp-dashboard/internal/services"
)

func main() {
	userID := flag.String("user", "", "user id to embed in the token (random when empty)")
	email := flag.String("email", "dev@example.com", "email claim")
	role := flag.String("role", "manager", "role claim")
	flag.Parse()

	_ = godotenv.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if *userID == "" {
		*userID = uuid.NewString()
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.IsProduction() {
		logger.Error("refusing to mint development tokens in production")
		os.Exit(1)
	}

	tokenService := services.NewTokenService(&cfg.JWT)
	token, expiresAt, err := tokenService.GenerateAccessToken(models.Principal{
		UserID: *userID,
		Email:  *email,
		Role:   *role,
	})
	if err != nil {
		logger.Error("failed to generate token", "error", err)
		os.Exit(1)
	}

	// Generated keys only exist in this process; the server needs the same pair.
	if cfg.JWT.Generated {
		publicKey, err := config.EncodePublicKey(cfg.JWT.PublicKey)
		if err != nil {
			logger.Error("failed to encode public key", "error", err)
			os.Exit(1)
		}
		fmt.Printf("export JWT_PRIVATE_KEY=%s\n", config.EncodePrivateKey(cfg.JWT.PrivateKey))
		fmt.Printf("export JWT_PUBLIC_KEY=%s\n", publicKey)
	}

	fmt.Printf("export ERP_TOKEN=%s\n", token)
	logger.Info("token issued", "user_id", *userID, "expires_at", expiresAt)
}
