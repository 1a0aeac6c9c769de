package viewer

import (
	"go.uber.org/fx"
)

var Module = fx.Module("viewer_repository",
	fx.Provide(
		fx.Annotate(
			NewPgxRepository,
			fx.As(new(Repository)),
		),
	),
)
