package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"marigold-backend/shared/database"
	"marigold-backend/shared/database/models"
	"marigold-backend/shared/utils/query"
)

// MenuItemRequest represents the create/update payload for a menu item
type MenuItemRequest struct {
	Name         string           `json:"name" binding:"required,min=2,max=200"`
	Description  string           `json:"description"`
	Price        float64          `json:"price" binding:"required,gt=0"`
	PriceUnit    string           `json:"priceUnit" binding:"omitempty,oneof=person platter dozen each hour"`
	Category     string           `json:"category" binding:"required,oneof=breakfast lunch dinner packages beverages desserts"`
	Subcategory  string           `json:"subcategory" binding:"max=100"`
	ServiceType  string           `json:"serviceType" binding:"omitempty,oneof=corporate wedding social catering all"`
	IsActive     *bool            `json:"isActive"`
	IsFeatured   *bool            `json:"isFeatured"`
	DisplayOrder int              `json:"displayOrder" binding:"gte=0"`
	MinimumOrder int              `json:"minimumOrder" binding:"omitempty,gte=1"`
	Notes        string           `json:"notes"`
	Image        models.ItemImage `json:"image"`
}

func applyMenuItemRequest(item *models.MenuItem, req MenuItemRequest) {
	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.PriceUnit = req.PriceUnit
	if item.PriceUnit == "" {
		item.PriceUnit = "person"
	}
	item.Category = req.Category
	item.Subcategory = req.Subcategory
	item.ServiceType = req.ServiceType
	if item.ServiceType == "" {
		item.ServiceType = "corporate"
	}
	item.IsActive = req.IsActive == nil || *req.IsActive
	item.IsFeatured = req.IsFeatured != nil && *req.IsFeatured
	item.DisplayOrder = req.DisplayOrder
	item.MinimumOrder = req.MinimumOrder
	if item.MinimumOrder < 1 {
		item.MinimumOrder = 1
	}
	item.Notes = req.Notes
	item.Image = req.Image
}

// GetMenuItems lists menu items for a service type
// @Summary List menu items
// @Description Lists menu items for the requested service type. Items tagged "all" appear for every service type.
// @Tags menu-items
// @Produce json
// @Param serviceType query string false "corporate, wedding or social (default: corporate)"
// @Param category query string false "Filter by category"
// @Param featured query bool false "Only featured items"
// @Param active query string false "true, false or all (default: true)"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page (unpaged when omitted)"
// @Success 200 {object} map[string]interface{}
// @Router /menu-items [get]
func GetMenuItems(ctx *gin.Context) {
	params := query.ParseListParams(ctx, 0, "", "")

	dbQuery := database.DB.Model(&models.MenuItem{})
	if active := query.ActiveFlag(ctx); active != nil {
		dbQuery = dbQuery.Where("is_active = ?", *active)
	}

	serviceType := ctx.DefaultQuery("serviceType", "corporate")
	if serviceType != "all" {
		dbQuery = dbQuery.Where("service_type IN ?", []string{serviceType, "all"})
	}
	if category := ctx.Query("category"); category != "" {
		dbQuery = dbQuery.Where("category = ?", category)
	}
	if featured := query.BoolFlag(ctx, "featured"); featured != nil {
		dbQuery = dbQuery.Where("is_featured = ?", *featured)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		respondServerError(ctx, "Failed to count menu items")
		return
	}

	allowedSort := map[string]string{
		"name":         "name",
		"price":        "price",
		"displayOrder": "display_order",
		"createdAt":    "created_at",
	}
	dbQuery = query.ApplySort(dbQuery, params, allowedSort, "category ASC, display_order ASC, created_at DESC")
	dbQuery = query.ApplyPagination(dbQuery, params)

	var items []models.MenuItem
	if err := dbQuery.Find(&items).Error; err != nil {
		respondServerError(ctx, "Failed to fetch menu items")
		return
	}

	respondList(ctx, items, query.BuildPagination(params, total))
}

// GetMenuItem fetches a single menu item
// @Summary Get menu item
// @Tags menu-items
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /menu-items/{id} [get]
func GetMenuItem(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid menu item ID")
		return
	}

	var item models.MenuItem
	if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Menu item not found")
		return
	}

	respondData(ctx, http.StatusOK, item)
}

// CreateMenuItem creates a menu item
// @Summary Create menu item
// @Tags menu-items
// @Accept json
// @Produce json
// @Param request body handlers.MenuItemRequest true "Menu item"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Router /menu-items [post]
func CreateMenuItem(ctx *gin.Context) {
	var req MenuItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	var item models.MenuItem
	applyMenuItemRequest(&item, req)

	if err := database.DB.Create(&item).Error; err != nil {
		respondServerError(ctx, "Failed to create menu item")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Menu item created",
		"data":    item,
	})
}

// UpdateMenuItem replaces the editable fields of a menu item
// @Summary Update menu item
// @Tags menu-items
// @Accept json
// @Produce json
// @Param id path string true "Menu item ID"
// @Param request body handlers.MenuItemRequest true "Menu item"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /menu-items/{id} [put]
func UpdateMenuItem(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid menu item ID")
		return
	}

	var req MenuItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	var item models.MenuItem
	if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Menu item not found")
		return
	}

	applyMenuItemRequest(&item, req)

	if err := database.DB.Save(&item).Error; err != nil {
		respondServerError(ctx, "Failed to update menu item")
		return
	}

	respondData(ctx, http.StatusOK, item)
}

// DeleteMenuItem removes a menu item
// @Summary Delete menu item
// @Tags menu-items
// @Produce json
// @Param id path string true "Menu item ID"
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /menu-items/{id} [delete]
func DeleteMenuItem(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid menu item ID")
		return
	}

	var item models.MenuItem
	if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Menu item not found")
		return
	}

	if err := database.DB.Delete(&item).Error; err != nil {
		respondServerError(ctx, "Failed to delete menu item")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Menu item deleted",
	})
}
