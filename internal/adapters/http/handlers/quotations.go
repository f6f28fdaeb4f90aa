package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/event-quote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/event-quote-service/internal/app"
	"github.com/jsamuelsen/event-quote-service/internal/pricing"
)

// QuotationHandler serves the stored quotations.
type QuotationHandler struct {
	service *app.QuotationService
}

// NewQuotationHandler creates a quotation handler.
func NewQuotationHandler(service *app.QuotationService) *QuotationHandler {
	return &QuotationHandler{service: service}
}

func (h *QuotationHandler) adders(items []dto.AddItemRequest) []app.EditFunc {
	edits := make([]app.EditFunc, len(items))
	for i := range items {
		edits[i] = h.service.ItemAdder(toAddItemInput(&items[i]), nil)
	}

	return edits
}

func toAddItemInput(req *dto.AddItemRequest) app.AddItemInput {
	in := app.AddItemInput{
		ServiceName: req.ServiceName,
		Category:    req.ParsedCategory(),
		Quantity:    req.EffectiveQuantity(),
	}

	if req.Custom != nil {
		custom := req.Custom.ServiceItem()
		in.Custom = &custom
	}

	return in
}

// Create handles POST /api/v1/quotations.
//
// @Summary Create a quotation
// @Tags quotations
// @Accept json
// @Produce json
// @Param request body dto.CreateQuotationRequest true "Initial fields and items"
// @Success 201 {object} dto.QuotationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quotations [post]
func (h *QuotationHandler) Create(c *gin.Context) {
	var req dto.CreateQuotationRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	edits := append([]app.EditFunc{req.QuotationFields.Apply}, h.adders(req.Items)...)

	q, err := h.service.Create(c.Request.Context(), app.Chain(edits...))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewQuotationResponse(q, true))
}

// List handles GET /api/v1/quotations. Quotations are returned oldest first.
//
// @Summary List quotations
// @Tags quotations
// @Produce json
// @Param limit query int false "Page size (1-100)"
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} dto.PaginatedResponse[dto.QuotationResponse]
// @Router /api/v1/quotations [get]
func (h *QuotationHandler) List(c *gin.Context) {
	var req dto.PaginationRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	cursor, err := req.DecodeCursor()
	if err != nil && !errors.Is(err, dto.ErrNoCursor) {
		badRequest(c, "invalid cursor")
		return
	}

	qs, err := h.service.List(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	limit := req.GetLimit()

	page, err := dto.PageQuotations(qs, cursor, limit)
	if err != nil {
		badRequest(c, "invalid cursor")
		return
	}

	paged := dto.NewPaginatedResponse(page, limit, dto.QuotationCursor)

	items := make([]dto.QuotationResponse, len(paged.Items))
	for i, q := range paged.Items {
		items[i] = dto.NewQuotationResponse(q, false)
	}

	c.JSON(http.StatusOK, dto.PaginatedResponse[dto.QuotationResponse]{
		Items:      items,
		NextCursor: paged.NextCursor,
		HasMore:    paged.HasMore,
	})
}

// Stats handles GET /api/v1/quotations/stats.
func (h *QuotationHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatisticsResponse(stats))
}

// Get handles GET /api/v1/quotations/:id.
//
// @Summary Get a quotation with totals and grouped items
// @Tags quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} dto.QuotationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/quotations/{id} [get]
func (h *QuotationHandler) Get(c *gin.Context) {
	q, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuotationResponse(q, true))
}

// Update handles PATCH /api/v1/quotations/:id. Field edits, item patches
// and added items are applied in one session; a failure in any of them
// leaves the stored quotation unchanged.
//
// @Summary Edit a quotation
// @Tags quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param request body dto.UpdateQuotationRequest true "Changes"
// @Success 200 {object} dto.QuotationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/quotations/{id} [patch]
func (h *QuotationHandler) Update(c *gin.Context) {
	var req dto.UpdateQuotationRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	edits := []app.EditFunc{req.QuotationFields.Apply}
	for i := range req.Items {
		edits = append(edits, req.Items[i].Apply)
	}

	edits = append(edits, h.adders(req.AddItems)...)

	q, err := h.service.Update(c.Request.Context(), c.Param("id"), app.Chain(edits...))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuotationResponse(q, true))
}

// Delete handles DELETE /api/v1/quotations/:id.
func (h *QuotationHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Duplicate handles POST /api/v1/quotations/:id/duplicate.
func (h *QuotationHandler) Duplicate(c *gin.Context) {
	q, err := h.service.Duplicate(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewQuotationResponse(q, true))
}

// AddItem handles POST /api/v1/quotations/:id/items.
//
// @Summary Add a catalog or custom service to a quotation
// @Tags quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param request body dto.AddItemRequest true "Service to add"
// @Success 201 {object} dto.AddItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/quotations/{id}/items [post]
func (h *QuotationHandler) AddItem(c *gin.Context) {
	var req dto.AddItemRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	q, lineID, err := h.service.AddItem(c.Request.Context(), c.Param("id"), toAddItemInput(&req))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AddItemResponse{
		LineID:    lineID,
		Quotation: dto.NewQuotationResponse(q, true),
	})
}

// RemoveItem handles DELETE /api/v1/quotations/:id/items/:itemId.
func (h *QuotationHandler) RemoveItem(c *gin.Context) {
	q, err := h.service.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("itemId"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuotationResponse(q, true))
}

// ApplyRegionalPricing handles POST /api/v1/quotations/:id/regional-pricing.
// Every line's override price is replaced by its scaled base price.
func (h *QuotationHandler) ApplyRegionalPricing(c *gin.Context) {
	var req dto.RegionalPricingRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	q, m, err := h.service.ApplyRegionalPricing(c.Request.Context(), c.Param("id"), req.City)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RegionalPricingResponse{
		MultiplierResponse: dto.MultiplierResponse{
			City:       req.City,
			Tier:       string(pricing.TierOf(req.City)),
			Multiplier: m,
		},
		Quotation: dto.NewQuotationResponse(q, true),
	})
}

// ToggleFinalized handles POST /api/v1/quotations/:id/finalize.
func (h *QuotationHandler) ToggleFinalized(c *gin.Context) {
	q, err := h.service.ToggleFinalized(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuotationResponse(q, true))
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeBadRequest, message).
		WithTraceID(dto.GetTraceID(c)))
}

// RegisterQuotationRoutes registers the quotation routes on rg.
func (h *QuotationHandler) RegisterQuotationRoutes(rg *gin.RouterGroup) {
	quotations := rg.Group("/quotations")
	quotations.POST("", h.Create)
	quotations.GET("", h.List)
	quotations.GET("/stats", h.Stats)
	quotations.GET("/:id", h.Get)
	quotations.PATCH("/:id", h.Update)
	quotations.DELETE("/:id", h.Delete)
	quotations.POST("/:id/duplicate", h.Duplicate)
	quotations.POST("/:id/items", h.AddItem)
	quotations.DELETE("/:id/items/:itemId", h.RemoveItem)
	quotations.POST("/:id/regional-pricing", h.ApplyRegionalPricing)
	quotations.POST("/:id/finalize", h.ToggleFinalized)
}
