package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recipeprep/backend/internal/grocery"
	"github.com/pageza/recipeprep/backend/internal/models"
	"github.com/pageza/recipeprep/backend/internal/service"
	"github.com/pageza/recipeprep/backend/internal/types"
)

// GroceryItemView is a stored item plus its human-readable amount
type GroceryItemView struct {
	models.GroceryListItem
	Display string `json:"display"`
}

// GroceryGroupView is one category section of a list
type GroceryGroupView struct {
	Category grocery.Category  `json:"category"`
	Items    []GroceryItemView `json:"items"`
}

// GroceryListView is a list as clients render it
type GroceryListView struct {
	*models.GroceryList
	Items  []GroceryItemView  `json:"items"`
	Groups []GroceryGroupView `json:"groups"`
}

func newItemView(it models.GroceryListItem) GroceryItemView {
	return GroceryItemView{GroceryListItem: it, Display: grocery.FormatMeasure(it.Quantity, it.Unit)}
}

// NewGroceryListView adds display strings and category groups to list
func NewGroceryListView(list *models.GroceryList) GroceryListView {
	view := GroceryListView{GroceryList: list, Items: make([]GroceryItemView, len(list.Items))}
	for i, it := range list.Items {
		view.Items[i] = newItemView(it)
	}
	for _, g := range service.GroupItems(list) {
		group := GroceryGroupView{Category: g.Category, Items: make([]GroceryItemView, len(g.Items))}
		for i, it := range g.Items {
			group.Items[i] = newItemView(it)
		}
		view.Groups = append(view.Groups, group)
	}
	if view.Groups == nil {
		view.Groups = []GroceryGroupView{}
	}
	return view
}

type GroceryHandler struct {
	lists   service.IGroceryService
	exports service.IExportService
	logger  *zap.Logger
}

func NewGroceryHandler(lists service.IGroceryService, exports service.IExportService, logger *zap.Logger) *GroceryHandler {
	return &GroceryHandler{lists: lists, exports: exports, logger: logger}
}

// RegisterRoutes mounts the list endpoints. generate guards list generation,
// typically with a rate limiter.
func (h *GroceryHandler) RegisterRoutes(router *gin.RouterGroup, generate ...gin.HandlerFunc) {
	lists := router.Group("/grocery-lists")
	{
		lists.POST("", append(generate, h.Generate)...)
		lists.GET("", h.List)
		lists.GET("/:id", h.Get)
		lists.DELETE("/:id", h.Delete)
		lists.GET("/:id/export", h.Export)
		lists.POST("/:id/items", h.AddItem)
		lists.PATCH("/:id/items/:itemId", h.UpdateItem)
		lists.DELETE("/:id/items/checked", h.ClearChecked)
		lists.PUT("/:id/categories/order", h.ReorderCategories)
	}
}

// Generate builds a list from the meal plan between start_date and end_date
func (h *GroceryHandler) Generate(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.GenerateGroceryListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	from, err := types.ParseDate(req.StartDate)
	if err != nil {
		badRequest(c, "invalid start_date")
		return
	}
	to, err := types.ParseDate(req.EndDate)
	if err != nil {
		badRequest(c, "invalid end_date")
		return
	}

	list, err := h.lists.Generate(c.Request.Context(), userID, req.Name, from, to)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"grocery_list": NewGroceryListView(list)})
}

func (h *GroceryHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	lists, err := h.lists.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"grocery_lists": lists})
}

func (h *GroceryHandler) Get(c *gin.Context) {
	list, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"grocery_list": NewGroceryListView(list)})
}

func (h *GroceryHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.lists.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateItem checks, unchecks or recategorizes one item
func (h *GroceryHandler) UpdateItem(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "itemId")
	if !ok {
		return
	}
	var req types.UpdateGroceryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if req.Checked == nil && req.CategoryID == nil {
		badRequest(c, "nothing to update")
		return
	}

	ctx := c.Request.Context()
	var (
		item *models.GroceryListItem
		err  error
	)
	if req.Checked != nil {
		if item, err = h.lists.SetChecked(ctx, userID, listID, itemID, *req.Checked); err != nil {
			respondError(c, h.logger, err)
			return
		}
	}
	if req.CategoryID != nil {
		if item, err = h.lists.UpdateItemCategory(ctx, userID, listID, itemID, *req.CategoryID); err != nil {
			respondError(c, h.logger, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"item": newItemView(*item)})
}

// AddItem merges a free-text line into the list
func (h *GroceryHandler) AddItem(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req types.AddGroceryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	list, err := h.lists.AddManualItem(c.Request.Context(), userID, listID, req.Line)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"grocery_list": NewGroceryListView(list)})
}

func (h *GroceryHandler) ClearChecked(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	removed, err := h.lists.ClearChecked(c.Request.Context(), userID, listID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

func (h *GroceryHandler) ReorderCategories(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req types.ReorderCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	list, err := h.lists.ReorderCategories(c.Request.Context(), userID, listID, req.CategoryIDs)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": list.Categories})
}

// Export streams the list as XLSX. With ?upload=true and storage configured
// it answers with a temporary download URL instead.
func (h *GroceryHandler) Export(c *gin.Context) {
	list, ok := h.load(c)
	if !ok {
		return
	}
	upload, _ := strconv.ParseBool(c.Query("upload"))

	export, err := h.exports.Export(c.Request.Context(), list, upload)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if export.URL != "" {
		c.JSON(http.StatusOK, gin.H{"url": export.URL, "file_name": export.FileName})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.FileName))
	c.Data(http.StatusOK, export.ContentType, export.Data)
}

func (h *GroceryHandler) load(c *gin.Context) (*models.GroceryList, bool) {
	userID, ok := currentUser(c)
	if !ok {
		return nil, false
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return nil, false
	}
	list, err := h.lists.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, h.logger, err)
		return nil, false
	}
	return list, true
}
