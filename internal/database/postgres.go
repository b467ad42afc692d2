package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"

	"github.com/nirvaankohli/invasisee/internal/config"
	"github.com/nirvaankohli/invasisee/internal/database/migrations"
	"github.com/nirvaankohli/invasisee/internal/logger"
)

var DB *pgxpool.Pool

// Connect crée le pool pgx, attend que la base soit joignable et applique
// les migrations avant de rendre la main
func Connect(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
	)

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	// La base peut mettre quelques secondes à accepter des connexions au
	// démarrage (docker compose), donc on ping avec backoff
	backoff := retry.WithMaxRetries(5, retry.NewFibonacci(time.Second))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			logger.Warning("Database not ready yet: %v", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	if err := runMigrations(ctx, dsn); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to run migrations: %w", err)
	}

	logger.Success("Connected to PostgreSQL successfully")

	DB = pool

	return pool, nil
}

// runMigrations applique les migrations embarquées via goose (driver pgx stdlib)
func runMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
