package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"marigold-backend/shared/database"
	"marigold-backend/shared/database/models"
	"marigold-backend/shared/utils/query"
)

// CorporateServiceRequest represents the create/update payload for a
// corporate service card
type CorporateServiceRequest struct {
	Title        string           `json:"title" binding:"required,min=2,max=200"`
	Description  string           `json:"description" binding:"required,min=10"`
	Icon         string           `json:"icon" binding:"max=100"`
	Image        models.ItemImage `json:"image"`
	IsActive     *bool            `json:"isActive"`
	DisplayOrder int              `json:"displayOrder" binding:"gte=0"`
	CTAText      string           `json:"ctaText"`
	CTALink      string           `json:"ctaLink"`
	ServiceType  string           `json:"serviceType" binding:"omitempty,oneof=corporate wedding social all"`
}

func applyCorporateServiceRequest(card *models.CorporateService, req CorporateServiceRequest) {
	card.Title = req.Title
	card.Description = req.Description
	card.Icon = req.Icon
	card.Image = req.Image
	card.IsActive = req.IsActive == nil || *req.IsActive
	card.DisplayOrder = req.DisplayOrder
	card.CTAText = req.CTAText
	if card.CTAText == "" {
		card.CTAText = "Learn More"
	}
	card.CTALink = req.CTALink
	if card.CTALink == "" {
		card.CTALink = "/contact"
	}
	card.ServiceType = req.ServiceType
	if card.ServiceType == "" {
		card.ServiceType = "corporate"
	}
}

// GetCorporateServices lists corporate service cards
// @Summary List corporate services
// @Description Lists corporate service cards in display order. Inactive cards are hidden unless active=all is requested.
// @Tags corporate-services
// @Produce json
// @Param active query string false "true, false or all (default: true)"
// @Param serviceType query string false "Filter by service type"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page (unpaged when omitted)"
// @Success 200 {object} map[string]interface{}
// @Router /corporate-services [get]
func GetCorporateServices(ctx *gin.Context) {
	params := query.ParseListParams(ctx, 0, "", "")

	dbQuery := database.DB.Model(&models.CorporateService{})
	if active := query.ActiveFlag(ctx); active != nil {
		dbQuery = dbQuery.Where("is_active = ?", *active)
	}
	if serviceType := ctx.Query("serviceType"); serviceType != "" {
		dbQuery = dbQuery.Where("service_type = ?", serviceType)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		respondServerError(ctx, "Failed to count corporate services")
		return
	}

	allowedSort := map[string]string{
		"title":        "title",
		"displayOrder": "display_order",
		"createdAt":    "created_at",
	}
	dbQuery = query.ApplySort(dbQuery, params, allowedSort, "display_order ASC, created_at DESC")
	dbQuery = query.ApplyPagination(dbQuery, params)

	var cards []models.CorporateService
	if err := dbQuery.Find(&cards).Error; err != nil {
		respondServerError(ctx, "Failed to fetch corporate services")
		return
	}

	respondList(ctx, cards, query.BuildPagination(params, total))
}

// GetCorporateService fetches a single corporate service card
// @Summary Get corporate service
// @Tags corporate-services
// @Produce json
// @Param id path string true "Corporate service ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /corporate-services/{id} [get]
func GetCorporateService(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid corporate service ID")
		return
	}

	var card models.CorporateService
	if err := database.DB.First(&card, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Corporate service not found")
		return
	}

	respondData(ctx, http.StatusOK, card)
}

// CreateCorporateService creates a corporate service card
// @Summary Create corporate service
// @Tags corporate-services
// @Accept json
// @Produce json
// @Param request body handlers.CorporateServiceRequest true "Corporate service"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Router /corporate-services [post]
func CreateCorporateService(ctx *gin.Context) {
	var req CorporateServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	var card models.CorporateService
	applyCorporateServiceRequest(&card, req)

	if err := database.DB.Create(&card).Error; err != nil {
		respondServerError(ctx, "Failed to create corporate service")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Corporate service created",
		"data":    card,
	})
}

// UpdateCorporateService replaces the editable fields of a corporate service card
// @Summary Update corporate service
// @Tags corporate-services
// @Accept json
// @Produce json
// @Param id path string true "Corporate service ID"
// @Param request body handlers.CorporateServiceRequest true "Corporate service"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /corporate-services/{id} [put]
func UpdateCorporateService(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid corporate service ID")
		return
	}

	var req CorporateServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	var card models.CorporateService
	if err := database.DB.First(&card, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Corporate service not found")
		return
	}

	applyCorporateServiceRequest(&card, req)

	if err := database.DB.Save(&card).Error; err != nil {
		respondServerError(ctx, "Failed to update corporate service")
		return
	}

	respondData(ctx, http.StatusOK, card)
}

// DeleteCorporateService removes a corporate service card
// @Summary Delete corporate service
// @Tags corporate-services
// @Produce json
// @Param id path string true "Corporate service ID"
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /corporate-services/{id} [delete]
func DeleteCorporateService(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid corporate service ID")
		return
	}

	var card models.CorporateService
	if err := database.DB.First(&card, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Corporate service not found")
		return
	}

	if err := database.DB.Delete(&card).Error; err != nil {
		respondServerError(ctx, "Failed to delete corporate service")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Corporate service deleted",
	})
}
