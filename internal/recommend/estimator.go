package recommend

import (
	"strings"

	"github.com/jsamuelsen/event-quote-service/internal/domain"
)

// Guests served per unit for the scaled services.
const (
	guestsPerWaiter   = 20
	guestsPerGuard    = 100
	guestsPerBus      = 50
	guestsPerPetalsKg = 100
)

// SuggestedQuantity estimates how many units of service an event with the
// given guest count needs. Catering scales one-to-one with guests; a few
// staffing, transport and flower services scale by a fixed ratio; everything
// else is booked once.
func SuggestedQuantity(service domain.ServiceItem, guests int) int {
	switch service.Category {
	case domain.CategoryCatering:
		return guests
	case domain.CategoryStaffing:
		if strings.Contains(service.Name, "Waitstaff") {
			return atLeastOne(guests / guestsPerWaiter)
		}

		if strings.Contains(service.Name, "Security") {
			return atLeastOne(guests / guestsPerGuard)
		}
	case domain.CategoryTransportation:
		if strings.Contains(service.Name, "Bus") {
			return atLeastOne(guests / guestsPerBus)
		}
	case domain.CategoryFlowers:
		if strings.Contains(service.Name, "Rose Petals") {
			return atLeastOne(guests / guestsPerPetalsKg)
		}
	}

	return 1
}

func atLeastOne(n int) int {
	return max(1, n)
}
