package recommend

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen/event-quote-service/internal/domain"
)

// premiumBudgetThreshold is the budget above which wedding premium
// additions are suggested.
var premiumBudgetThreshold = decimal.NewFromInt(500000)

// largeWeddingGuests is the guest count above which capacity services are
// suggested for weddings.
const largeWeddingGuests = 200

// tier is one group of fragments recommended together at a single priority.
type tier struct {
	name      string
	priority  domain.Priority
	fragments []string

	// applies gates the tier on the request. Nil means always.
	applies func(Request) bool

	// reason renders the explanation shown next to each entry.
	reason func(Request) string

	// fixedQuantity overrides the quantity estimate when positive.
	fixedQuantity int
}

func (t tier) appliesTo(req Request) bool {
	return t.applies == nil || t.applies(req)
}

// ruleSet is the ordered list of tiers for one event type.
type ruleSet struct {
	name  string
	tiers []tier
}

func staticReason(s string) func(Request) string {
	return func(Request) string { return s }
}

// ruleSetFor dispatches an event type to its rule set. Event types without
// dedicated rules, and unknown values, use the general rules.
func ruleSetFor(e domain.EventType) ruleSet {
	switch e {
	case domain.EventWedding:
		return weddingRules()
	case domain.EventEngagement:
		return engagementRules()
	case domain.EventHaldi:
		return haldiRules()
	case domain.EventMehendi:
		return mehendiRules()
	case domain.EventSangeet:
		return sangeetRules()
	case domain.EventReception:
		return receptionRules()
	case domain.EventNaming:
		return namingRules()
	case domain.EventHousewarming,
		domain.EventBirthday,
		domain.EventAnniversary,
		domain.EventCorporate,
		domain.EventFestival:
		return generalRules()
	default:
		return generalRules()
	}
}

// allRuleSets lists every distinct rule set once, for resolution at
// construction time.
func allRuleSets() []ruleSet {
	return []ruleSet{
		weddingRules(),
		engagementRules(),
		haldiRules(),
		mehendiRules(),
		sangeetRules(),
		receptionRules(),
		namingRules(),
		generalRules(),
	}
}

func weddingRules() ruleSet {
	return ruleSet{
		name: "wedding",
		tiers: []tier{
			{
				name:     "essential",
				priority: domain.PriorityHigh,
				reason:   staticReason("Essential for Telugu wedding traditions"),
				fragments: []string{
					"Traditional Telugu Mandap",
					"Nadaswaram & Thavil",
					"Telugu Traditional Meals",
					"Purohit/Priest",
					"Traditional Wedding Photography",
					"Bridal Flower Jewelry",
					"Sacred Fire Setup",
					"Garland Exchange",
				},
			},
			{
				name:     "capacity",
				priority: domain.PriorityMedium,
				applies:  func(r Request) bool { return r.GuestCount > largeWeddingGuests },
				reason: func(r Request) string {
					return fmt.Sprintf("Recommended for large weddings (%d guests)", r.GuestCount)
				},
				fragments: []string{
					"Kalyanam Mandap with Pillars",
					"4K Cinematic Videography",
					"Live Streaming Setup",
					"Generator Backup",
					"Security Personnel",
					"Guest Transportation",
				},
			},
			{
				name:     "premium",
				priority: domain.PriorityLow,
				applies: func(r Request) bool {
					return r.Budget != nil && r.Budget.GreaterThan(premiumBudgetThreshold)
				},
				reason:        staticReason("Premium addition for grand celebrations"),
				fixedQuantity: 1,
				fragments: []string{
					"Elephant for Procession",
					"Horse for Groom Entry",
					"Drone Photography",
					"Live Band Performance",
					"Classical Dance Performance",
				},
			},
		},
	}
}

func singleTier(name, reason string, priority domain.Priority, fragments ...string) ruleSet {
	return ruleSet{
		name: name,
		tiers: []tier{{
			name:      "essential",
			priority:  priority,
			reason:    staticReason(reason),
			fragments: fragments,
		}},
	}
}

func engagementRules() ruleSet {
	return singleTier("engagement", "Essential for engagement ceremony", domain.PriorityHigh,
		"Stage Decoration",
		"Candid Photography",
		"DJ with Sound System",
		"Cocktail Snacks",
		"Return Gifts",
		"Anchor/MC Services",
	)
}

func haldiRules() ruleSet {
	return singleTier("haldi", "Traditional haldi ceremony essential", domain.PriorityHigh,
		"Haldi Ceremony Setup",
		"Marigold Decoration",
		"Traditional Wedding Photography",
		"Jasmine Strings",
		"Rangoli Design",
	)
}

func mehendiRules() ruleSet {
	return singleTier("mehendi", "Essential for mehendi ceremony", domain.PriorityHigh,
		"Mehendi Artist",
		"Stage Decoration",
		"DJ with Sound System",
		"Cocktail Snacks",
		"Candid Photography",
	)
}

func sangeetRules() ruleSet {
	return singleTier("sangeet", "Essential for sangeet night entertainment", domain.PriorityHigh,
		"DJ with Sound System",
		"Professional Lighting",
		"Stage Decoration",
		"Live Band Performance",
		"Anchor/MC Services",
		"4K Cinematic Videography",
	)
}

func receptionRules() ruleSet {
	return singleTier("reception", "Essential for reception ceremony", domain.PriorityHigh,
		"Stage Decoration",
		"LED Screen Rental",
		"Professional Lighting",
		"DJ with Sound System",
		"Candid Photography",
		"4K Cinematic Videography",
	)
}

func namingRules() ruleSet {
	return singleTier("naming", "Traditional naming ceremony essential", domain.PriorityHigh,
		"Purohit/Priest",
		"Traditional Wedding Photography",
		"Sweet Counter",
		"Kalash Decoration",
		"Ashtamangala Items",
	)
}

func generalRules() ruleSet {
	return ruleSet{
		name: "general",
		tiers: []tier{{
			name:      "general",
			priority:  domain.PriorityMedium,
			reason:    staticReason("General event requirement"),
			fragments: []string{"Event Coordinator", "Photography", "Sound System", "Catering"},
		}},
	}
}
