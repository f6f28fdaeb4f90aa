package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/event-quote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/event-quote-service/internal/app"
)

// PlanningHandler serves event recommendations.
type PlanningHandler struct {
	planner *app.PlannerService
}

// NewPlanningHandler creates a planning handler.
func NewPlanningHandler(planner *app.PlannerService) *PlanningHandler {
	return &PlanningHandler{planner: planner}
}

// Recommend handles POST /api/v1/recommendations.
//
// @Summary Recommend services for an event
// @Tags planning
// @Accept json
// @Produce json
// @Param request body dto.RecommendationRequest true "Event details"
// @Success 200 {object} dto.PlanResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/recommendations [post]
func (h *PlanningHandler) Recommend(c *gin.Context) {
	var req dto.RecommendationRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	plan, err := h.planner.Plan(c.Request.Context(), app.PlanRequest{
		EventType:    req.ParsedEventType(),
		GuestCount:   req.GuestCount,
		Budget:       req.Budget,
		Venue:        req.Venue,
		EventDate:    req.ParsedEventDate(),
		TargetBudget: req.TargetBudget,
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPlanResponse(plan))
}

func toPlanResponse(plan app.Plan) dto.PlanResponse {
	resp := dto.PlanResponse{
		Recommendations: dto.NewRecommendationResponses(plan.Recommendations),
		Total:           plan.Total,
		Season:          plan.Season,
		Tips:            plan.Tips,
	}

	if opt := plan.Optimization; opt != nil {
		resp.Optimization = &dto.OptimizationResponse{
			Target:        opt.Target,
			OriginalTotal: opt.OriginalTotal,
			SelectedTotal: opt.SelectedTotal,
			Remaining:     opt.Remaining,
			Trimmed:       opt.Trimmed,
			Dropped:       dto.NewRecommendationResponses(opt.Dropped),
		}
	}

	return resp
}

// RegisterPlanningRoutes registers the planning routes on rg.
func (h *PlanningHandler) RegisterPlanningRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommendations", h.Recommend)
}
