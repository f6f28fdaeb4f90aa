// Package catalog holds the read-only registry of bookable services.
//
// A Catalog is built once at startup and shared by reference. Every accessor
// returns a fresh slice, so callers may sort or filter the result freely.
package catalog

import (
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen/event-quote-service/internal/domain"
)

// Catalog is an immutable collection of services plus the regional and
// seasonal supplements that are only offered conditionally.
type Catalog struct {
	services []domain.ServiceItem
	cities   []citySupplement
	seasonal map[domain.Season][]domain.ServiceItem
}

// New builds the standard catalog: the general services followed by the
// cultural specialties.
func New() *Catalog {
	services := standardServices()
	services = append(services, culturalServices()...)

	return &Catalog{
		services: services,
		cities:   citySupplements(),
		seasonal: seasonalSupplements(),
	}
}

// NewFromServices builds a catalog over an explicit service list with no
// regional or seasonal supplements.
func NewFromServices(services []domain.ServiceItem) *Catalog {
	return &Catalog{
		services: slices.Clone(services),
		seasonal: map[domain.Season][]domain.ServiceItem{},
	}
}

// All returns every base service in catalog order.
func (c *Catalog) All() []domain.ServiceItem {
	return slices.Clone(c.services)
}

// Len returns the number of base services.
func (c *Catalog) Len() int {
	return len(c.services)
}

// ByCategory returns the base services in category, in catalog order.
func (c *Catalog) ByCategory(category domain.Category) []domain.ServiceItem {
	return c.filter(func(s domain.ServiceItem) bool { return s.Category == category })
}

// Traditional returns the services flagged as cultural tradition offerings.
func (c *Catalog) Traditional() []domain.ServiceItem {
	return c.filter(func(s domain.ServiceItem) bool { return s.Traditional })
}

// ForCity returns the base services followed by every supplement whose
// keywords appear in city, case-insensitively.
func (c *Catalog) ForCity(city string) []domain.ServiceItem {
	out := c.All()

	for _, sup := range c.cities {
		if domain.MentionsAny(city, sup.keywords) {
			out = append(out, sup.services...)
		}
	}

	return out
}

// ForDate returns the base services followed by the supplements for the
// season of date's month.
func (c *Catalog) ForDate(date time.Time) []domain.ServiceItem {
	out := c.All()

	return append(out, c.seasonal[domain.SeasonOf(date.Month())]...)
}

// Popular returns the services most commonly booked for weddings. A service
// is included when its name contains one of the popular names.
func (c *Catalog) Popular() []domain.ServiceItem {
	return c.filter(func(s domain.ServiceItem) bool {
		for _, name := range popularNames {
			if strings.Contains(s.Name, name) {
				return true
			}
		}

		return false
	})
}

func (c *Catalog) filter(keep func(domain.ServiceItem) bool) []domain.ServiceItem {
	out := make([]domain.ServiceItem, 0, len(c.services))
	for _, s := range c.services {
		if keep(s) {
			out = append(out, s)
		}
	}

	return out
}
