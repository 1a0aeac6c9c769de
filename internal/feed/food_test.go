package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFood(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		name string
		opts []itemOpt
		want bool
	}{
		{"food category always passes", []itemOpt{withCategory("Food"), withDescription("techno all night")}, true},
		{"wellness never passes", []itemOpt{withCategory("wellness"), withDescription("best brunch")}, false},
		{"nightlife never passes", []itemOpt{withCategory("nightlife"), withDescription("restaurant takeover")}, false},
		{"one primary keyword", []itemOpt{withDescription("amazing bakery treats")}, true},
		{"primary keyword in tags", []itemOpt{withTags("Gastropub")}, true},
		{"one secondary keyword", []itemOpt{withDescription("bring treats")}, false},
		{"two secondary keywords", []itemOpt{withDescription("shared meal and treats")}, true},
		{"nothing", []itemOpt{withCategory("music"), withDescription("live set")}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cfg.IsFood(item("Night out", "o", tc.opts...)))
		})
	}
}
