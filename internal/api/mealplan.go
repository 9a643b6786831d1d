package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recipeprep/backend/internal/service"
	"github.com/pageza/recipeprep/backend/internal/types"
)

// defaultPlanDays is the window listed when no range is given
const defaultPlanDays = 7

type MealPlanHandler struct {
	mealPlan service.IMealPlanService
	logger   *zap.Logger
	now      func() time.Time
}

func NewMealPlanHandler(mealPlan service.IMealPlanService, logger *zap.Logger) *MealPlanHandler {
	return &MealPlanHandler{mealPlan: mealPlan, logger: logger, now: time.Now}
}

func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plan := router.Group("/meal-plan")
	{
		plan.GET("", h.ListEntries)
		plan.POST("", h.AddEntry)
		plan.PUT("/:id", h.UpdateEntry)
		plan.DELETE("/:id", h.DeleteEntry)
	}
}

// ListEntries returns entries between ?from= and ?to= (inclusive). Missing
// bounds default to the week starting today.
func (h *MealPlanHandler) ListEntries(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	today := h.now().UTC().Truncate(24 * time.Hour)
	from, to := today, today.AddDate(0, 0, defaultPlanDays-1)
	if raw := c.Query("from"); raw != "" {
		d, err := types.ParseDate(raw)
		if err != nil {
			badRequest(c, "invalid from date")
			return
		}
		from = d
		if c.Query("to") == "" {
			to = from.AddDate(0, 0, defaultPlanDays-1)
		}
	}
	if raw := c.Query("to"); raw != "" {
		d, err := types.ParseDate(raw)
		if err != nil {
			badRequest(c, "invalid to date")
			return
		}
		to = d
	}

	entries, err := h.mealPlan.ListEntries(c.Request.Context(), userID, from, to)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"from":    from.Format(types.DateLayout),
		"to":      to.Format(types.DateLayout),
		"entries": entries,
	})
}

func (h *MealPlanHandler) AddEntry(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.CreateMealPlanEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	entry, err := h.mealPlan.AddEntry(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

func (h *MealPlanHandler) UpdateEntry(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req types.UpdateMealPlanEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	entry, err := h.mealPlan.UpdateEntry(c.Request.Context(), userID, id, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

func (h *MealPlanHandler) DeleteEntry(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.mealPlan.DeleteEntry(c.Request.Context(), userID, id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
