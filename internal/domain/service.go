package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Category classifies a catalog service. The declaration order of the
// constants is the order used when grouping line items for export.
type Category string

const (
	CategoryPhotography    Category = "photography"
	CategoryDecoration     Category = "decoration"
	CategoryCatering       Category = "catering"
	CategoryEntertainment  Category = "entertainment"
	CategoryVenue          Category = "venue"
	CategoryTransportation Category = "transportation"
	CategoryFlowers        Category = "flowers"
	CategoryStaffing       Category = "staffing"
	CategoryTraditional    Category = "traditional"
	CategoryEquipment      Category = "equipment"
	CategoryGifts          Category = "gifts"
	CategoryBeauty         Category = "beauty"
)

var categoryOrder = []Category{
	CategoryPhotography,
	CategoryDecoration,
	CategoryCatering,
	CategoryEntertainment,
	CategoryVenue,
	CategoryTransportation,
	CategoryFlowers,
	CategoryStaffing,
	CategoryTraditional,
	CategoryEquipment,
	CategoryGifts,
	CategoryBeauty,
}

// Categories returns every category in export order.
func Categories() []Category {
	return slices.Clone(categoryOrder)
}

// DisplayName returns the human-readable category label.
func (c Category) DisplayName() string {
	switch c {
	case CategoryPhotography:
		return "Photography & Videography"
	case CategoryDecoration:
		return "Decoration & Mandap"
	case CategoryCatering:
		return "Catering & Food"
	case CategoryEntertainment:
		return "Entertainment & Music"
	case CategoryVenue:
		return "Venue & Facilities"
	case CategoryTransportation:
		return "Transportation"
	case CategoryFlowers:
		return "Flowers & Garlands"
	case CategoryStaffing:
		return "Staffing & Coordination"
	case CategoryTraditional:
		return "Traditional Services"
	case CategoryEquipment:
		return "Equipment & Technology"
	case CategoryGifts:
		return "Gifts & Favors"
	case CategoryBeauty:
		return "Beauty & Grooming"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return slices.Contains(categoryOrder, c)
}

// ParseCategory accepts a category key or display name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range categoryOrder {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, c.DisplayName()) {
			return c, nil
		}
	}

	return "", NewValidationErrorWithValue("category", fmt.Sprintf("unknown category %q", s), s)
}

// ServiceItem is one bookable catalog offering. Values are immutable once
// the catalog is built.
type ServiceItem struct {
	Name        string          `json:"name"`
	Category    Category        `json:"category"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	Unit        string          `json:"unit"`
	Description string          `json:"description"`
	Traditional bool            `json:"traditional"`
}

// ServiceKey is the identity of a service: name, category and base price.
// It is comparable and safe to use as a map key.
type ServiceKey struct {
	Name      string
	Category  Category
	BasePrice string
}

// String renders the key for logs and warnings.
func (k ServiceKey) String() string {
	return fmt.Sprintf("%s/%s@%s", k.Category, k.Name, k.BasePrice)
}

// Key returns the identity of the service.
func (s ServiceItem) Key() ServiceKey {
	return ServiceKey{
		Name:      s.Name,
		Category:  s.Category,
		BasePrice: s.BasePrice.String(),
	}
}

// SameService reports whether two items share an identity, ignoring unit,
// description and tradition flag.
func (s ServiceItem) SameService(other ServiceItem) bool {
	return s.Key() == other.Key()
}
