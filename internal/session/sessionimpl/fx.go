package sessionimpl

import (
	"context"

	"github.com/orgball2608/scenefeed/internal/session"
	"go.uber.org/fx"
)

var Module = fx.Module(
	"session",
	fx.Provide(
		newManager,
		func(m *Manager) session.Client { return m },
	),
)

func newManager(lc fx.Lifecycle, opts Opts) *Manager {
	m := New(opts)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			m.Stop()
			return nil
		},
	})
	return m
}
