package newsdb

import (
	"context"
	"os"

	"newscleanse/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func InitDBConnectionPool(ctx context.Context) (*pgxpool.Pool, error) {
	if err := godotenv.Load(); err != nil {
		logger.SafeInfo("no .env file found, using environment variables")
	}

	cfg := NewDatabaseConfigFromEnv()

	pool, err := pgxpool.New(ctx, cfg.BuildConnectionString())
	if err != nil {
		logger.SafeError("failed to create database pool", "error", err)
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		logger.SafeError("failed to ping database", "error", err)
		pool.Close()
		return nil, err
	}

	logger.SafeInfo("connected to database", "database", os.Getenv("DB_NAME"))

	return pool, nil
}
