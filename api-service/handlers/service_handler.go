package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"marigold-backend/shared/database"
	"marigold-backend/shared/database/models"
	"marigold-backend/shared/utils/query"
	"marigold-backend/shared/utils/slug"
)

// ServiceRequest represents the create/update payload for a service page
type ServiceRequest struct {
	Title          string                `json:"title" binding:"required,min=2,max=200"`
	Slug           string                `json:"slug"`
	Subtitle       string                `json:"subtitle" binding:"max=300"`
	Description    string                `json:"description" binding:"required,min=10"`
	HeroImage      models.HeroImage      `json:"heroImage"`
	Images         []models.ServiceImage `json:"images"`
	CTAText        string                `json:"ctaText"`
	CTALink        string                `json:"ctaLink"`
	IsActive       *bool                 `json:"isActive"`
	DisplayOrder   int                   `json:"displayOrder" binding:"gte=0"`
	SEOTitle       string                `json:"seoTitle"`
	SEODescription string                `json:"seoDescription"`
	SEOKeywords    string                `json:"seoKeywords"`
}

// keepValidServiceImages drops image entries that carry no URL.
func keepValidServiceImages(images []models.ServiceImage) []models.ServiceImage {
	kept := make([]models.ServiceImage, 0, len(images))
	for _, img := range images {
		if strings.TrimSpace(img.URL) != "" {
			kept = append(kept, img)
		}
	}
	return kept
}

func applyServiceRequest(service *models.Service, req ServiceRequest) {
	service.Title = req.Title
	service.Subtitle = req.Subtitle
	service.Description = req.Description
	service.HeroImage = req.HeroImage
	service.Images = keepValidServiceImages(req.Images)
	service.CTAText = req.CTAText
	if service.CTAText == "" {
		service.CTAText = "Get Started"
	}
	service.CTALink = req.CTALink
	if service.CTALink == "" {
		service.CTALink = "/contact"
	}
	service.IsActive = req.IsActive == nil || *req.IsActive
	service.DisplayOrder = req.DisplayOrder
	service.SEOTitle = req.SEOTitle
	service.SEODescription = req.SEODescription
	service.SEOKeywords = req.SEOKeywords
}

// GetServices lists service pages
// @Summary List services
// @Description Lists service pages ordered for display. Inactive pages are hidden unless active=all is requested.
// @Tags services
// @Produce json
// @Param active query string false "true, false or all (default: true)"
// @Param serviceType query string false "Match against the page slug"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page (unpaged when omitted)"
// @Success 200 {object} map[string]interface{}
// @Router /services [get]
func GetServices(ctx *gin.Context) {
	params := query.ParseListParams(ctx, 0, "", "")

	dbQuery := database.DB.Model(&models.Service{})
	if active := query.ActiveFlag(ctx); active != nil {
		dbQuery = dbQuery.Where("is_active = ?", *active)
	}
	if serviceType := ctx.Query("serviceType"); serviceType != "" {
		dbQuery = dbQuery.Where("slug = ?", serviceType)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		respondServerError(ctx, "Failed to count services")
		return
	}

	allowedSort := map[string]string{
		"title":        "title",
		"displayOrder": "display_order",
		"createdAt":    "created_at",
	}
	dbQuery = query.ApplySort(dbQuery, params, allowedSort, "display_order ASC, created_at DESC")
	dbQuery = query.ApplyPagination(dbQuery, params)

	var pages []models.Service
	if err := dbQuery.Find(&pages).Error; err != nil {
		respondServerError(ctx, "Failed to fetch services")
		return
	}

	respondList(ctx, pages, query.BuildPagination(params, total))
}

// GetService fetches a single service page by id
// @Summary Get service by ID
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /services/{id} [get]
func GetService(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid service ID")
		return
	}

	var page models.Service
	if err := database.DB.First(&page, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Service not found")
		return
	}

	respondData(ctx, http.StatusOK, page)
}

// GetServiceBySlug fetches a single active service page by slug
// @Summary Get service by slug
// @Tags services
// @Produce json
// @Param slug path string true "Service slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /services/slug/{slug} [get]
func GetServiceBySlug(ctx *gin.Context) {
	var page models.Service
	if err := database.DB.Where("slug = ? AND is_active = ?", ctx.Param("slug"), true).First(&page).Error; err != nil {
		respondNotFound(ctx, "Service not found")
		return
	}

	respondData(ctx, http.StatusOK, page)
}

// CreateService creates a service page
// @Summary Create service
// @Tags services
// @Accept json
// @Produce json
// @Param request body handlers.ServiceRequest true "Service"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Validation error or duplicate slug"
// @Router /services [post]
func CreateService(ctx *gin.Context) {
	var req ServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	pageSlug := req.Slug
	if pageSlug == "" {
		pageSlug = slug.Generate(req.Title)
	}
	taken, err := slugTaken(&models.Service{}, pageSlug, nil)
	if err != nil {
		respondServerError(ctx, "Failed to create service")
		return
	}
	if taken {
		respondBadRequest(ctx, "Service with this slug already exists")
		return
	}

	var page models.Service
	page.Slug = pageSlug
	applyServiceRequest(&page, req)

	if err := database.DB.Create(&page).Error; err != nil {
		respondServerError(ctx, "Failed to create service")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Service created",
		"data":    page,
	})
}

// UpdateService replaces the editable fields of a service page
// @Summary Update service
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body handlers.ServiceRequest true "Service"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Validation error or duplicate slug"
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /services/{id} [put]
func UpdateService(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid service ID")
		return
	}

	var req ServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	var page models.Service
	if err := database.DB.First(&page, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Service not found")
		return
	}

	if req.Slug != "" && req.Slug != page.Slug {
		taken, err := slugTaken(&models.Service{}, req.Slug, &page.ID)
		if err != nil {
			respondServerError(ctx, "Failed to update service")
			return
		}
		if taken {
			respondBadRequest(ctx, "Service with this slug already exists")
			return
		}
		page.Slug = req.Slug
	}

	applyServiceRequest(&page, req)

	if err := database.DB.Save(&page).Error; err != nil {
		respondServerError(ctx, "Failed to update service")
		return
	}

	respondData(ctx, http.StatusOK, page)
}

// DeleteService removes a service page
// @Summary Delete service
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /services/{id} [delete]
func DeleteService(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid service ID")
		return
	}

	var page models.Service
	if err := database.DB.First(&page, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Service not found")
		return
	}

	if err := database.DB.Delete(&page).Error; err != nil {
		respondServerError(ctx, "Failed to delete service")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Service deleted",
	})
}
