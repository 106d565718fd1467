// Command seed provisions the administrator account. It is idempotent:
// running it against an already seeded database is a no-op.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/eduliv/eduliv-go/internal/config"
	"github.com/eduliv/eduliv-go/internal/model"
	"github.com/eduliv/eduliv-go/internal/repository"
	"github.com/eduliv/eduliv-go/internal/schema"
	"github.com/eduliv/eduliv-go/internal/service"
)

var seedUser = model.CreateUserRequest{
	Email:    "admin@eduliv.com",
	FullName: "Administrador EduLIV",
	Password: "admin123456",
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.RunMigrations(ctx, db); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)

	if _, err := userRepo.GetByEmail(ctx, schema.NormalizeEmail(seedUser.Email)); err == nil {
		slog.Info("admin user already exists", "email", seedUser.Email)
		return
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		slog.Error("admin lookup failed", "error", err)
		os.Exit(1)
	}

	userService := service.NewUserService(userRepo, cfg)

	created, err := userService.Create(ctx, seedUser)
	if err != nil {
		slog.Error("creating admin user failed", "error", err)
		os.Exit(1)
	}

	slog.Info("admin user created",
		"email", created.Email,
		"fullName", created.FullName,
		"displayName", created.DisplayName,
	)
}
