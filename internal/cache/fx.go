package cache

import (
	"context"

	"github.com/orgball2608/scenefeed/pkg/config"
	"github.com/orgball2608/scenefeed/pkg/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In
	LC     fx.Lifecycle
	Logger logger.Logger
	Config *config.Config
}

// New picks Redis when REDIS_ADDR is set and the in-process LRU otherwise.
func New(opts Opts) Cache {
	if opts.Config.Redis.Addr == "" {
		opts.Logger.Info("Using in-memory feed cache", "size", opts.Config.Cache.Size, "ttl", opts.Config.Cache.TTL)
		return NewMemory(opts.Config.Cache.Size, opts.Config.Cache.TTL)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Config.Redis.Addr,
		Password: opts.Config.Redis.Password,
		DB:       opts.Config.Redis.DB,
	})

	opts.LC.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				// the feed still works without a cache hit path
				opts.Logger.Warn("Redis ping failed", "addr", opts.Config.Redis.Addr, "error", err)
				return nil
			}
			opts.Logger.Info("Connected to redis", "addr", opts.Config.Redis.Addr)
			return nil
		},
		OnStop: func(context.Context) error {
			return rdb.Close()
		},
	})

	return NewRedis(rdb, opts.Config.Cache.TTL)
}

var Module = fx.Provide(New)
