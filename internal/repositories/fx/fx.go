package fx

import (
	"github.com/orgball2608/scenefeed/internal/repositories/item"
	"github.com/orgball2608/scenefeed/internal/repositories/viewer"
	"go.uber.org/fx"
)

var Module = fx.Options(
	item.Module,
	viewer.Module,
)
