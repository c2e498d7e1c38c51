package handlers

import (
	"net/http"

	"homigo/services/plan"
	"homigo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlanHandler serves the VIP plan catalog.
type PlanHandler struct {
	Service plan.PlanService
	Logger  *zap.Logger
}

func NewPlanHandler(service plan.PlanService, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{Service: service, Logger: logger}
}

// ListPlansHandler returns all purchasable plans, cheapest first.
func (h *PlanHandler) ListPlansHandler(c *gin.Context) {
	plans, err := h.Service.ListPlans(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list vip plans", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load plans", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// GetPlanHandler returns one plan by id.
func (h *PlanHandler) GetPlanHandler(c *gin.Context) {
	p, err := h.Service.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "plan not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": p})
}
