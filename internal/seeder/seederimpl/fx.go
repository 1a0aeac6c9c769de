package seederimpl

import (
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/scenefeed/internal/seeder"
	"github.com/orgball2608/scenefeed/pkg/config"
	"go.uber.org/fx"
)

var Module = fx.Module(
	"seeder",
	fx.Provide(
		fx.Annotate(
			func(clock clockwork.Clock, cfg *config.Config) *TimestampGuard {
				return NewGuard(clock, cfg.Seeding.SkipHours)
			},
			fx.As(new(seeder.Guard)),
		),
		fx.Annotate(
			New,
			fx.As(new(seeder.Client)),
		),
	),
)
