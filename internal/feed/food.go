package feed

import (
	"strings"

	"github.com/orgball2608/scenefeed/internal/domain"
	"github.com/samber/lo"
)

// IsFood classifies an item for the food tab by category first, then by keywords
// found in description, title and scene tags.
func (c Config) IsFood(item domain.FeedItem) bool {
	category := strings.ToLower(item.Category)
	if lo.Contains(c.FoodExcludedCategories, category) {
		return false
	}
	if category != "" && category == c.FoodCategory {
		return true
	}

	text := strings.ToLower(item.Description + " " + item.Title + " " + strings.Join(item.SceneTags, " "))
	primary := countKeywords(text, c.PrimaryFoodKeywords)
	secondary := countKeywords(text, c.SecondaryFoodKeywords)

	return primary >= 1 || secondary >= c.SecondaryFoodMinMatches
}

func countKeywords(text string, keywords []string) int {
	return lo.CountBy(keywords, func(kw string) bool {
		return strings.Contains(text, kw)
	})
}
