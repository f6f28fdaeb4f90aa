package recommend

import (
	"log/slog"
	"slices"

	"github.com/jsamuelsen/event-quote-service/internal/domain"
)

var (
	outdoorKeywords = []string{"garden", "outdoor", "lawn"}
	indoorKeywords  = []string{"hotel", "banquet", "hall"}

	outdoorFragments = []string{"Generator Backup", "AC & Cooling", "Professional Lighting"}
	indoorFragments  = []string{"LED Screen Rental", "Professional Lighting"}
)

const (
	outdoorReason = "Essential for outdoor venue"
	indoorReason  = "Enhances indoor venue experience"
)

// VenueAdjuster adds services suited to the venue's setting. The outdoor and
// indoor checks are independent, so a venue can receive both.
type VenueAdjuster struct {
	outdoor []domain.ServiceItem
	indoor  []domain.ServiceItem
}

// NewVenueAdjuster resolves the venue services against src.
func NewVenueAdjuster(src ServiceSource, logger *slog.Logger) *VenueAdjuster {
	if logger == nil {
		logger = slog.Default()
	}

	return newVenueAdjuster(newResolver(src, logger))
}

func newVenueAdjuster(r *resolver) *VenueAdjuster {
	return &VenueAdjuster{
		outdoor: r.resolveAll("venue/outdoor", outdoorFragments),
		indoor:  r.resolveAll("venue/indoor", indoorFragments),
	}
}

// Adjust returns recs followed by any venue services not already present.
// A service is present when an entry with the same identity exists, including
// entries added earlier in the same call. recs is not modified.
func (v *VenueAdjuster) Adjust(recs []domain.Recommendation, venue string) []domain.Recommendation {
	out := slices.Clone(recs)

	seen := make(map[domain.ServiceKey]bool, len(out))
	for _, r := range out {
		seen[r.Service.Key()] = true
	}

	add := func(services []domain.ServiceItem, priority domain.Priority, reason string) {
		for _, s := range services {
			if seen[s.Key()] {
				continue
			}

			seen[s.Key()] = true
			out = append(out, domain.NewRecommendation(s, priority, reason, 1))
		}
	}

	if domain.MentionsAny(venue, outdoorKeywords) {
		add(v.outdoor, domain.PriorityHigh, outdoorReason)
	}

	if domain.MentionsAny(venue, indoorKeywords) {
		add(v.indoor, domain.PriorityMedium, indoorReason)
	}

	return out
}
