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

// LocationImageRequest carries the hero image of an exclusive location
type LocationImageRequest struct {
	URL    string `json:"url" binding:"required,url"`
	Alt    string `json:"alt"`
	Key    string `json:"key"`
	Width  int    `json:"width" binding:"omitempty,gt=0"`
	Height int    `json:"height" binding:"omitempty,gt=0"`
}

// ExclusiveLocationRequest represents the create/update payload for an
// exclusive location
type ExclusiveLocationRequest struct {
	Name               string                     `json:"name" binding:"required,min=2,max=200"`
	Slug               string                     `json:"slug"`
	Location           string                     `json:"location" binding:"required"`
	Description        string                     `json:"description" binding:"required,min=10"`
	Capacity           string                     `json:"capacity" binding:"required"`
	Image              LocationImageRequest       `json:"image" binding:"required"`
	Features           []string                   `json:"features"`
	Amenities          []string                   `json:"amenities"`
	PriceRange         string                     `json:"priceRange" binding:"omitempty,oneof=$ $$ $$$ $$$$"`
	ContactInfo        models.LocationContactInfo `json:"contactInfo"`
	Address            models.LocationAddress     `json:"address"`
	IsActive           *bool                      `json:"isActive"`
	IsFeatured         *bool                      `json:"isFeatured"`
	DisplayOrder       int                        `json:"displayOrder" binding:"gte=0"`
	AvailabilityStatus string                     `json:"availabilityStatus" binding:"omitempty,oneof=Available Booked Limited 'Coming Soon'"`
	SEO                models.SEOFields           `json:"seo"`
	SocialMedia        models.SocialMedia         `json:"socialMedia"`
	Tags               []string                   `json:"tags"`
	Notes              string                     `json:"notes"`
}

func applyExclusiveLocationRequest(loc *models.ExclusiveLocation, req ExclusiveLocationRequest) {
	loc.Name = req.Name
	loc.Location = req.Location
	loc.Description = req.Description
	loc.Capacity = req.Capacity
	loc.Image = models.LocationImage{
		URL:    req.Image.URL,
		Alt:    req.Image.Alt,
		Key:    req.Image.Key,
		Width:  req.Image.Width,
		Height: req.Image.Height,
	}
	if loc.Image.Width == 0 {
		loc.Image.Width = 800
	}
	if loc.Image.Height == 0 {
		loc.Image.Height = 533
	}
	loc.Features = req.Features
	loc.Amenities = req.Amenities
	loc.PriceRange = req.PriceRange
	if loc.PriceRange == "" {
		loc.PriceRange = "$$$"
	}
	loc.ContactInfo = req.ContactInfo
	loc.Address = req.Address
	if loc.Address.State == "" {
		loc.Address.State = "OH"
	}
	loc.IsActive = req.IsActive == nil || *req.IsActive
	loc.IsFeatured = req.IsFeatured == nil || *req.IsFeatured
	loc.DisplayOrder = req.DisplayOrder
	loc.AvailabilityStatus = req.AvailabilityStatus
	if loc.AvailabilityStatus == "" {
		loc.AvailabilityStatus = models.LocationAvailable
	}
	loc.SEO = req.SEO
	loc.SocialMedia = req.SocialMedia
	loc.Tags = req.Tags
	loc.Notes = req.Notes
}

// GetExclusiveLocations lists exclusive locations
// @Summary List exclusive locations
// @Description Lists exclusive partner locations. Inactive locations are hidden unless active=all is requested.
// @Tags exclusive-locations
// @Produce json
// @Param active query string false "true, false or all (default: true)"
// @Param featured query bool false "Only featured locations"
// @Param availabilityStatus query string false "Filter by availability"
// @Param location query string false "Location substring match"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page (unpaged when omitted)"
// @Success 200 {object} map[string]interface{}
// @Router /exclusive-locations [get]
func GetExclusiveLocations(ctx *gin.Context) {
	params := query.ParseListParams(ctx, 0, "displayOrder", "asc")

	dbQuery := database.DB.Model(&models.ExclusiveLocation{})
	if active := query.ActiveFlag(ctx); active != nil {
		dbQuery = dbQuery.Where("is_active = ?", *active)
	}
	if featured := query.BoolFlag(ctx, "featured"); featured != nil {
		dbQuery = dbQuery.Where("is_featured = ?", *featured)
	}
	if status := ctx.Query("availabilityStatus"); status != "" {
		dbQuery = dbQuery.Where("availability_status = ?", status)
	}
	if location := ctx.Query("location"); location != "" {
		dbQuery = dbQuery.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		respondServerError(ctx, "Failed to count exclusive locations")
		return
	}

	allowedSort := map[string]string{
		"name":         "name",
		"displayOrder": "display_order",
		"createdAt":    "created_at",
	}
	dbQuery = query.ApplySort(dbQuery, params, allowedSort, "display_order ASC, created_at DESC")
	dbQuery = query.ApplyPagination(dbQuery, params)

	var locations []models.ExclusiveLocation
	if err := dbQuery.Find(&locations).Error; err != nil {
		respondServerError(ctx, "Failed to fetch exclusive locations")
		return
	}

	respondList(ctx, locations, query.BuildPagination(params, total))
}

// GetFeaturedExclusiveLocations lists the featured subset for the homepage
// @Summary List featured exclusive locations
// @Tags exclusive-locations
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /exclusive-locations/featured [get]
func GetFeaturedExclusiveLocations(ctx *gin.Context) {
	var locations []models.ExclusiveLocation
	if err := database.DB.
		Where("is_active = ? AND is_featured = ?", true, true).
		Order("display_order ASC, created_at DESC").
		Find(&locations).Error; err != nil {
		respondServerError(ctx, "Failed to fetch featured locations")
		return
	}

	respondList(ctx, locations, nil)
}

// GetExclusiveLocation fetches a single location by id
// @Summary Get exclusive location by ID
// @Tags exclusive-locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /exclusive-locations/{id} [get]
func GetExclusiveLocation(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid location ID")
		return
	}

	var location models.ExclusiveLocation
	if err := database.DB.First(&location, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Exclusive location not found")
		return
	}

	respondData(ctx, http.StatusOK, location)
}

// GetExclusiveLocationBySlug fetches a single active location by slug
// @Summary Get exclusive location by slug
// @Tags exclusive-locations
// @Produce json
// @Param slug path string true "Location slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /exclusive-locations/slug/{slug} [get]
func GetExclusiveLocationBySlug(ctx *gin.Context) {
	var location models.ExclusiveLocation
	if err := database.DB.Where("slug = ? AND is_active = ?", ctx.Param("slug"), true).First(&location).Error; err != nil {
		respondNotFound(ctx, "Exclusive location not found")
		return
	}

	respondData(ctx, http.StatusOK, location)
}

// CreateExclusiveLocation creates an exclusive location
// @Summary Create exclusive location
// @Tags exclusive-locations
// @Accept json
// @Produce json
// @Param request body handlers.ExclusiveLocationRequest true "Exclusive location"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Validation error or duplicate slug"
// @Router /exclusive-locations [post]
func CreateExclusiveLocation(ctx *gin.Context) {
	var req ExclusiveLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	locationSlug := req.Slug
	if locationSlug == "" {
		locationSlug = slug.Generate(req.Name)
	}
	taken, err := slugTaken(&models.ExclusiveLocation{}, locationSlug, nil)
	if err != nil {
		respondServerError(ctx, "Failed to create exclusive location")
		return
	}
	if taken {
		respondBadRequest(ctx, "Exclusive location with this slug already exists")
		return
	}

	var location models.ExclusiveLocation
	location.Slug = locationSlug
	applyExclusiveLocationRequest(&location, req)

	if err := database.DB.Create(&location).Error; err != nil {
		respondServerError(ctx, "Failed to create exclusive location")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Exclusive location created",
		"data":    location,
	})
}

// UpdateExclusiveLocation replaces the editable fields of a location
// @Summary Update exclusive location
// @Tags exclusive-locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param request body handlers.ExclusiveLocationRequest true "Exclusive location"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Validation error or duplicate slug"
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /exclusive-locations/{id} [put]
func UpdateExclusiveLocation(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid location ID")
		return
	}

	var req ExclusiveLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	var location models.ExclusiveLocation
	if err := database.DB.First(&location, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Exclusive location not found")
		return
	}

	if req.Slug != "" && req.Slug != location.Slug {
		taken, err := slugTaken(&models.ExclusiveLocation{}, req.Slug, &location.ID)
		if err != nil {
			respondServerError(ctx, "Failed to update exclusive location")
			return
		}
		if taken {
			respondBadRequest(ctx, "Exclusive location with this slug already exists")
			return
		}
		location.Slug = req.Slug
	}

	applyExclusiveLocationRequest(&location, req)

	if err := database.DB.Save(&location).Error; err != nil {
		respondServerError(ctx, "Failed to update exclusive location")
		return
	}

	respondData(ctx, http.StatusOK, location)
}

// ReorderExclusiveLocation moves a location to a new display position
// @Summary Reorder exclusive location
// @Tags exclusive-locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param request body handlers.DisplayOrderRequest true "New display order"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /exclusive-locations/{id}/reorder [put]
func ReorderExclusiveLocation(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid location ID")
		return
	}

	var req DisplayOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	var location models.ExclusiveLocation
	if err := database.DB.First(&location, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Exclusive location not found")
		return
	}

	location.DisplayOrder = *req.DisplayOrder
	if err := database.DB.Save(&location).Error; err != nil {
		respondServerError(ctx, "Failed to reorder exclusive location")
		return
	}

	respondData(ctx, http.StatusOK, location)
}

// DeleteExclusiveLocation removes a location
// @Summary Delete exclusive location
// @Tags exclusive-locations
// @Produce json
// @Param id path string true "Location ID"
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /exclusive-locations/{id} [delete]
func DeleteExclusiveLocation(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid location ID")
		return
	}

	var location models.ExclusiveLocation
	if err := database.DB.First(&location, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Exclusive location not found")
		return
	}

	if err := database.DB.Delete(&location).Error; err != nil {
		respondServerError(ctx, "Failed to delete exclusive location")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Exclusive location deleted",
	})
}
