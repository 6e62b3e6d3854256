// Command create_admin provisions a manager account from the command line.
// It is meant for first-time setup, before any account exists to log in with.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
	"github.com/mfigueredo/cambio_admin_backend/internal/platform/config"
	"github.com/mfigueredo/cambio_admin_backend/internal/utils"
	"github.com/mfigueredo/cambio_admin_backend/pkg/database"
)

const minPasswordLength = 8

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	email := flag.String("email", "", "email of the manager account")
	password := flag.String("password", "", "password (min 8 characters)")
	fullName := flag.String("name", "", "full name")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: create_admin -email <email> -password <password> [-name <full name>]")
		os.Exit(2)
	}

	validate := validator.New()
	if err := validate.Var(*email, "required,email"); err != nil {
		logger.Error("Invalid email address", slog.String("email", *email))
		os.Exit(2)
	}
	if len(*password) < minPasswordLength {
		logger.Error("Password too short", slog.Int("min_length", minPasswordLength))
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(pool)

	var exists bool
	err = pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND deleted_at IS NULL)`, *email).Scan(&exists)
	if err != nil {
		logger.Error("Failed to check existing accounts", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if exists {
		logger.Error("An account with this email already exists", slog.String("email", *email))
		os.Exit(1)
	}

	hash, err := utils.HashPassword(*password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		os.Exit(1)
	}

	userID := uuid.NewString()
	_, err = pool.Exec(ctx, `
		INSERT INTO users (user_id, email, full_name, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		userID, *email, *fullName, hash, domain.RoleManager, time.Now())
	if err != nil {
		logger.Error("Failed to create manager account", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Manager account created: %s (%s)\n", *email, userID)
}
