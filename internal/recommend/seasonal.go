package recommend

import (
	"slices"
	"time"

	"github.com/jsamuelsen/event-quote-service/internal/domain"
)

var seasonalTips = map[domain.Season][]string{
	domain.SeasonSummer: {
		"AC & Cooling arrangements are essential",
		"Consider indoor venues or covered areas",
		"Increase water and cooling arrangements",
		"Schedule events during cooler hours",
	},
	domain.SeasonMonsoon: {
		"Covered venue is mandatory",
		"Generator backup recommended",
		"Waterproof decorations needed",
		"Indoor photography backup plan",
	},
	domain.SeasonWinter: {
		"Perfect weather for outdoor events",
		"Garden venues highly recommended",
		"Extended event hours possible",
		"Ideal for traditional ceremonies",
	},
}

// SeasonalAdvisor gives planning tips for the season of an event date.
type SeasonalAdvisor struct{}

// NewSeasonalAdvisor returns an advisor over the built-in tip tables.
func NewSeasonalAdvisor() *SeasonalAdvisor {
	return &SeasonalAdvisor{}
}

// Tips returns the tips for date's month. The slice is a fresh copy.
func (a *SeasonalAdvisor) Tips(date time.Time) []string {
	return a.TipsForMonth(date.Month())
}

// TipsForMonth returns the tips for month, or an empty list when the month
// is outside 1-12.
func (a *SeasonalAdvisor) TipsForMonth(month time.Month) []string {
	tips := slices.Clone(seasonalTips[domain.SeasonOf(month)])
	if tips == nil {
		return []string{}
	}

	return tips
}

// Season reports the season used for date.
func (a *SeasonalAdvisor) Season(date time.Time) domain.Season {
	return domain.SeasonOf(date.Month())
}
