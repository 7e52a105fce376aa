package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"user-registration-service/config"
)

// Container carries the process-wide resources constructed once in main and
// handed to the modules that need them. Redis is connected before the
// server accepts traffic but no request path uses it yet.
type Container struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	Pool   *pgxpool.Pool
	Redis  *redis.Client
}

func New(cfg *config.Config, logger *logrus.Logger, pool *pgxpool.Pool, rdb *redis.Client) *Container {
	return &Container{Cfg: cfg, Logger: logger, Pool: pool, Redis: rdb}
}
