package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipeprep/backend/internal/grocery"
	"github.com/pageza/recipeprep/backend/internal/service"
	"github.com/pageza/recipeprep/backend/internal/types"
)

// maxParseLines bounds one parse request
const maxParseLines = 500

// IngredientHandler exposes the ingredient parser
type IngredientHandler struct{}

func NewIngredientHandler() *IngredientHandler {
	return &IngredientHandler{}
}

func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/ingredients/parse", h.Parse)
}

// Parse turns raw ingredient lines into structured ingredients with a
// numeric amount, a category and a display string.
func (h *IngredientHandler) Parse(c *gin.Context) {
	var req types.ParseIngredientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if len(req.Lines) > maxParseLines {
		badRequest(c, "too many lines")
		return
	}

	parsed := make([]types.ParsedIngredient, 0, len(req.Lines))
	for _, line := range req.Lines {
		parsed = append(parsed, ParseLine(line))
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": parsed})
}

// ParseLine parses one raw line, markup included
func ParseLine(line string) types.ParsedIngredient {
	ing := grocery.ParseIngredientLine(service.StripMarkup(line))
	amount := grocery.ParseQuantity(ing.Quantity)
	return types.ParsedIngredient{
		Ingredient: ing,
		Raw:        line,
		Amount:     amount,
		Category:   grocery.CategoryName(ing.Name),
		Display:    strings.TrimSpace(grocery.FormatMeasure(amount, ing.Unit) + " " + ing.Name),
	}
}
