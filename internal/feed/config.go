package feed

import (
	"strings"

	"github.com/orgball2608/scenefeed/internal/domain"
	"github.com/samber/lo"
)

// DefaultCadence is the number of organic items between two sponsored items.
const DefaultCadence = 6

// Config holds the tunables of the pipeline. Zero values are not usable; start
// from DefaultConfig.
type Config struct {
	// BlockedOrganizers matches organizer email or name, case-insensitive.
	BlockedOrganizers []string
	// EphemeralSources are undated moment-like posts that skip the past-date rule.
	EphemeralSources []domain.Source
	Cadence          int

	FoodCategory            string
	FoodExcludedCategories  []string
	PrimaryFoodKeywords     []string
	SecondaryFoodKeywords   []string
	SecondaryFoodMinMatches int
}

func DefaultConfig() Config {
	return Config{
		EphemeralSources: []domain.Source{
			domain.SourceVibePost,
			domain.SourceVibePostSeed,
			domain.SourceProfileEntriesSeed,
			domain.SourceMemoryPost,
		},
		Cadence:                DefaultCadence,
		FoodCategory:           "food",
		FoodExcludedCategories: []string{"wellness", "nightlife", "social"},
		PrimaryFoodKeywords: []string{
			"restaurant", "cafe", "coffee", "dining", "brunch", "dinner", "lunch",
			"breakfast", "cuisine", "chef", "culinary", "eatery", "kitchen", "dessert",
			"bakery", "tasting", "bistro", "diner", "gastropub",
		},
		SecondaryFoodKeywords:   []string{"food", "meal", "treats"},
		SecondaryFoodMinMatches: 2,
	}
}

func (c Config) IsEphemeral(source domain.Source) bool {
	return lo.Contains(c.EphemeralSources, source)
}

func (c Config) isBlocked(item domain.FeedItem) bool {
	for _, blocked := range c.BlockedOrganizers {
		if blocked == "" {
			continue
		}
		if strings.EqualFold(blocked, item.OrganizerEmail) || strings.EqualFold(blocked, item.OrganizerName) {
			return true
		}
	}
	return false
}
