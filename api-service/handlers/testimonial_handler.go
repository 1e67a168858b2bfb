package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"marigold-backend/shared/database"
	"marigold-backend/shared/database/models"
	"marigold-backend/shared/utils/query"
)

// CreateTestimonialRequest represents the payload for adding a testimonial
type CreateTestimonialRequest struct {
	ClientNames  string           `json:"clientNames" binding:"required,min=2,max=200"`
	Content      string           `json:"content" binding:"required,min=10"`
	Rating       int              `json:"rating" binding:"omitempty,gte=1,lte=5"`
	ServiceType  string           `json:"serviceType" binding:"omitempty,oneof=corporate wedding social catering all"`
	EventDate    *time.Time       `json:"eventDate"`
	Location     string           `json:"location" binding:"max=200"`
	Image        models.HeroImage `json:"image"`
	IsActive     *bool            `json:"isActive"`
	IsFeatured   *bool            `json:"isFeatured"`
	DisplayOrder int              `json:"displayOrder" binding:"gte=0"`
}

// UpdateTestimonialRequest represents a partial testimonial update
type UpdateTestimonialRequest struct {
	ClientNames  *string           `json:"clientNames" binding:"omitempty,min=2,max=200"`
	Content      *string           `json:"content" binding:"omitempty,min=10"`
	Rating       *int              `json:"rating" binding:"omitempty,gte=1,lte=5"`
	ServiceType  *string           `json:"serviceType" binding:"omitempty,oneof=corporate wedding social catering all"`
	EventDate    *time.Time        `json:"eventDate"`
	Location     *string           `json:"location" binding:"omitempty,max=200"`
	Image        *models.HeroImage `json:"image"`
	IsActive     *bool             `json:"isActive"`
	IsFeatured   *bool             `json:"isFeatured"`
	DisplayOrder *int              `json:"displayOrder" binding:"omitempty,gte=0"`
}

// GetTestimonials lists testimonials for a service type
// @Summary List testimonials
// @Description Lists testimonials for the requested service type. Testimonials tagged "all" appear everywhere. Featured entries sort first.
// @Tags testimonials
// @Produce json
// @Param serviceType query string false "corporate, wedding or social"
// @Param featured query bool false "Only featured testimonials"
// @Param active query string false "true, false or all (default: true)"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page (unpaged when omitted)"
// @Success 200 {object} map[string]interface{}
// @Router /testimonials [get]
func GetTestimonials(ctx *gin.Context) {
	params := query.ParseListParams(ctx, 0, "", "")

	dbQuery := database.DB.Model(&models.Testimonial{})
	if active := query.ActiveFlag(ctx); active != nil {
		dbQuery = dbQuery.Where("is_active = ?", *active)
	}
	if serviceType := ctx.Query("serviceType"); serviceType != "" && serviceType != "all" {
		dbQuery = dbQuery.Where("service_type IN ?", []string{serviceType, "all"})
	}
	if featured := query.BoolFlag(ctx, "featured"); featured != nil {
		dbQuery = dbQuery.Where("is_featured = ?", *featured)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		respondServerError(ctx, "Failed to count testimonials")
		return
	}

	allowedSort := map[string]string{
		"rating":       "rating",
		"eventDate":    "event_date",
		"displayOrder": "display_order",
		"createdAt":    "created_at",
	}
	dbQuery = query.ApplySort(dbQuery, params, allowedSort, "is_featured DESC, display_order ASC, created_at DESC")
	dbQuery = query.ApplyPagination(dbQuery, params)

	var testimonials []models.Testimonial
	if err := dbQuery.Find(&testimonials).Error; err != nil {
		respondServerError(ctx, "Failed to fetch testimonials")
		return
	}

	respondList(ctx, testimonials, query.BuildPagination(params, total))
}

// GetTestimonial fetches a single testimonial
// @Summary Get testimonial
// @Tags testimonials
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /testimonials/{id} [get]
func GetTestimonial(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid testimonial ID")
		return
	}

	var testimonial models.Testimonial
	if err := database.DB.First(&testimonial, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Testimonial not found")
		return
	}

	respondData(ctx, http.StatusOK, testimonial)
}

// CreateTestimonial adds a testimonial
// @Summary Create testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Param request body handlers.CreateTestimonialRequest true "Testimonial"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Router /testimonials [post]
func CreateTestimonial(ctx *gin.Context) {
	var req CreateTestimonialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	rating := req.Rating
	if rating == 0 {
		rating = 5
	}
	serviceType := req.ServiceType
	if serviceType == "" {
		serviceType = "all"
	}

	testimonial := models.Testimonial{
		ClientNames:  req.ClientNames,
		Content:      req.Content,
		Rating:       rating,
		ServiceType:  serviceType,
		EventDate:    req.EventDate,
		Location:     req.Location,
		Image:        req.Image,
		IsActive:     req.IsActive == nil || *req.IsActive,
		IsFeatured:   req.IsFeatured != nil && *req.IsFeatured,
		DisplayOrder: req.DisplayOrder,
	}

	if err := database.DB.Create(&testimonial).Error; err != nil {
		respondServerError(ctx, "Failed to create testimonial")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Testimonial created",
		"data":    testimonial,
	})
}

// UpdateTestimonial updates the provided fields of a testimonial
// @Summary Update testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Param request body handlers.UpdateTestimonialRequest true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /testimonials/{id} [put]
func UpdateTestimonial(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid testimonial ID")
		return
	}

	var req UpdateTestimonialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	var testimonial models.Testimonial
	if err := database.DB.First(&testimonial, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Testimonial not found")
		return
	}

	if req.ClientNames != nil {
		testimonial.ClientNames = *req.ClientNames
	}
	if req.Content != nil {
		testimonial.Content = *req.Content
	}
	if req.Rating != nil {
		testimonial.Rating = *req.Rating
	}
	if req.ServiceType != nil {
		testimonial.ServiceType = *req.ServiceType
	}
	if req.EventDate != nil {
		testimonial.EventDate = req.EventDate
	}
	if req.Location != nil {
		testimonial.Location = *req.Location
	}
	if req.Image != nil {
		testimonial.Image = *req.Image
	}
	if req.IsActive != nil {
		testimonial.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		testimonial.IsFeatured = *req.IsFeatured
	}
	if req.DisplayOrder != nil {
		testimonial.DisplayOrder = *req.DisplayOrder
	}

	if err := database.DB.Save(&testimonial).Error; err != nil {
		respondServerError(ctx, "Failed to update testimonial")
		return
	}

	respondData(ctx, http.StatusOK, testimonial)
}

// DeleteTestimonial removes a testimonial
// @Summary Delete testimonial
// @Tags testimonials
// @Produce json
// @Param id path string true "Testimonial ID"
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /testimonials/{id} [delete]
func DeleteTestimonial(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid testimonial ID")
		return
	}

	var testimonial models.Testimonial
	if err := database.DB.First(&testimonial, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Testimonial not found")
		return
	}

	if err := database.DB.Delete(&testimonial).Error; err != nil {
		respondServerError(ctx, "Failed to delete testimonial")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Testimonial deleted",
	})
}
