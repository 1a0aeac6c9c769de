package logger

import (
	"context"
	"time"

	"github.com/orgball2608/scenefeed/pkg/config"
	"go.uber.org/fx"
)

var FxOption = fx.Annotate(
	func(lc fx.Lifecycle, cfg *config.Config) *Impl {
		l := New(
			Opts{
				Env:       cfg.App.Env,
				SentryDSN: cfg.App.SentryUrl,
			},
		)
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				Flush(2 * time.Second)
				return nil
			},
		})
		return l
	},
	fx.As(new(Logger)),
)
