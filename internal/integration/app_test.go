package integration_test

import (
	"log/slog"
	"os"

	"github.com/ekinunal/seat-inventory/internal/app"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App   *app.Application
	DB    *pgxpool.Pool
	Cache *redis.Client
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := app.OpenDB(cfg.DB)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.OpenRedis(cfg.Redis)
	if err != nil {
		db.Close()
		return nil, err
	}

	application := app.New(cfg, logger, db, redisClient)

	return &TestApp{
		App:   application,
		DB:    db,
		Cache: redisClient,
	}, nil
}
