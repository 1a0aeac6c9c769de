package item

import (
	"go.uber.org/fx"
)

var Module = fx.Module("feed_item_repository",
	fx.Provide(
		fx.Annotate(
			NewPgxRepository,
			fx.As(new(Repository)),
		),
	),
)
