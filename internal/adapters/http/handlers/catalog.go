package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/event-quote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/event-quote-service/internal/domain"
	"github.com/jsamuelsen/event-quote-service/internal/ports"
	"github.com/jsamuelsen/event-quote-service/internal/pricing"
)

// TipsProvider returns seasonal planning tips for a date.
type TipsProvider interface {
	Tips(date time.Time) ([]string, domain.Season)
}

// CatalogHandler serves the read-only catalog and reference data.
type CatalogHandler struct {
	catalog ports.CatalogProvider
	tips    TipsProvider
	now     func() time.Time
}

// NewCatalogHandler creates a catalog handler. A nil clock means time.Now.
func NewCatalogHandler(catalog ports.CatalogProvider, tips TipsProvider, clock func() time.Time) *CatalogHandler {
	if clock == nil {
		clock = time.Now
	}

	return &CatalogHandler{catalog: catalog, tips: tips, now: clock}
}

// ListServices handles GET /api/v1/services.
// The city and date filters add the regional and seasonal supplements to the
// base catalog; category and traditional narrow the result.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	var q dto.ServiceQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.HandleError(c, err)
		return
	}

	services := h.catalog.ForCity(q.City)

	if date := dto.ParseDate(q.Date); date != nil {
		for _, s := range h.catalog.ForDate(*date) {
			if !containsService(services, s) {
				services = append(services, s)
			}
		}
	}

	var category domain.Category
	if q.Category != "" {
		category, _ = domain.ParseCategory(q.Category)
	}

	filtered := services[:0]

	for _, s := range services {
		if category != "" && s.Category != category {
			continue
		}

		if q.Traditional && !s.Traditional {
			continue
		}

		filtered = append(filtered, s)
	}

	c.JSON(http.StatusOK, dto.NewServiceResponses(filtered))
}

func containsService(services []domain.ServiceItem, s domain.ServiceItem) bool {
	for _, existing := range services {
		if existing.SameService(s) {
			return true
		}
	}

	return false
}

// PopularServices handles GET /api/v1/services/popular.
func (h *CatalogHandler) PopularServices(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewServiceResponses(h.catalog.Popular()))
}

// ListEventTypes handles GET /api/v1/event-types.
func (h *CatalogHandler) ListEventTypes(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewEventTypeResponses())
}

// SeasonalTips handles GET /api/v1/seasonal-tips. The date defaults to
// today.
func (h *CatalogHandler) SeasonalTips(c *gin.Context) {
	var q dto.TipsQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.HandleError(c, err)
		return
	}

	date := h.now()
	if parsed := dto.ParseDate(q.Date); parsed != nil {
		date = *parsed
	}

	tips, season := h.tips.Tips(date)

	c.JSON(http.StatusOK, dto.TipsResponse{
		Date:   date.Format(dto.DateLayout),
		Season: season,
		Tips:   tips,
	})
}

// RegionalMultiplier handles GET /api/v1/pricing/multiplier.
func (h *CatalogHandler) RegionalMultiplier(c *gin.Context) {
	var q dto.MultiplierQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MultiplierResponse{
		City:       q.City,
		Tier:       string(pricing.TierOf(q.City)),
		Multiplier: pricing.Multiplier(q.City),
	})
}

// RegisterCatalogRoutes registers the catalog routes on rg.
func (h *CatalogHandler) RegisterCatalogRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.ListServices)
	rg.GET("/services/popular", h.PopularServices)
	rg.GET("/event-types", h.ListEventTypes)
	rg.GET("/seasonal-tips", h.SeasonalTips)
	rg.GET("/pricing/multiplier", h.RegionalMultiplier)
}
