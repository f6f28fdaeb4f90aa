package domain

import "time"

// Season is one of the three climate seasons used for advice and catalog
// supplements.
type Season string

const (
	SeasonNone    Season = ""
	SeasonSummer  Season = "summer"
	SeasonMonsoon Season = "monsoon"
	SeasonWinter  Season = "winter"
)

// SeasonOf maps a calendar month (1-12) to its season. Winter spans the
// year boundary, so it is matched against two explicit month sets. Values
// outside 1-12 return SeasonNone.
func SeasonOf(month time.Month) Season {
	switch month {
	case time.March, time.April, time.May:
		return SeasonSummer
	case time.June, time.July, time.August, time.September:
		return SeasonMonsoon
	case time.October, time.November, time.December:
		return SeasonWinter
	case time.January, time.February:
		return SeasonWinter
	default:
		return SeasonNone
	}
}
