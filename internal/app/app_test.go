package app

import (
	"testing"

	"github.com/orgball2608/scenefeed/internal/feed"
	"github.com/orgball2608/scenefeed/pkg/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
)

func TestNewPipeline(t *testing.T) {
	cfg := &config.Config{}
	cfg.Feed.BlockedOrganizers = []string{"spam@x.com"}
	cfg.Feed.SponsoredCadence = 4

	pc := NewPipeline(cfg).Config()

	assert.Equal(t, []string{"spam@x.com"}, pc.BlockedOrganizers)
	assert.Equal(t, 4, pc.Cadence)

	cfg.Feed.SponsoredCadence = 0
	assert.Equal(t, feed.DefaultCadence, NewPipeline(cfg).Config().Cadence)
}

func TestModuleGraph(t *testing.T) {
	assert.NoError(t, fx.ValidateApp(Module))
}
