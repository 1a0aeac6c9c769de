package app

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/scenefeed/internal/cache"
	"github.com/orgball2608/scenefeed/internal/events"
	"github.com/orgball2608/scenefeed/internal/feed"
	"github.com/orgball2608/scenefeed/internal/metrics"
	"github.com/orgball2608/scenefeed/internal/migrations"
	repositories "github.com/orgball2608/scenefeed/internal/repositories/fx"
	"github.com/orgball2608/scenefeed/internal/seeder"
	"github.com/orgball2608/scenefeed/internal/seeder/seederimpl"
	"github.com/orgball2608/scenefeed/internal/server"
	"github.com/orgball2608/scenefeed/internal/session/sessionimpl"
	"github.com/orgball2608/scenefeed/pkg/config"
	"github.com/orgball2608/scenefeed/pkg/logger"
	"github.com/orgball2608/scenefeed/pkg/pgx"
	"github.com/orgball2608/scenefeed/pkg/retry"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
		clockwork.NewRealClock,
		NewPipeline,
	),
	repositories.Module,
	cache.Module,
	metrics.Module,
	events.Module,
	seederimpl.Module,
	sessionimpl.Module,
	fx.Invoke(migrate),
	server.Module,
	fx.Invoke(run),
)

// NewPipeline builds the feed pipeline from FEED_* settings.
func NewPipeline(cfg *config.Config) *feed.Pipeline {
	pc := feed.DefaultConfig()
	pc.BlockedOrganizers = cfg.Feed.BlockedOrganizers
	if cfg.Feed.SponsoredCadence > 0 {
		pc.Cadence = cfg.Feed.SponsoredCadence
	}
	return feed.New(pc)
}

func migrate(lc fx.Lifecycle, cfg *config.Config, log logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			err := retry.Do(ctx, log, "Migrations", func() error {
				return migrations.Up(ctx, cfg.GetDSN())
			}, retry.DefaultConfig())
			if err != nil {
				log.Error("Failed to run migrations", "error", err)
				return err
			}
			log.Info("Migrations applied")
			return nil
		},
	})
}

func run(lc fx.Lifecycle, log logger.Logger, seed seeder.Client) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			seed.RunAsync(ctx)

			if err := seed.ScheduleSeeding(ctx); err != nil {
				log.Error("Schedule seeding error", "error", err)
			}
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
