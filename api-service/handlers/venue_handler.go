package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"marigold-backend/shared/database"
	"marigold-backend/shared/database/models"
	"marigold-backend/shared/utils/query"
	"marigold-backend/shared/utils/slug"
)

// VenueCapacityRequest carries guest counts for a venue
type VenueCapacityRequest struct {
	Seated      int    `json:"seated" binding:"gte=0"`
	Standing    int    `json:"standing" binding:"gte=0"`
	DisplayText string `json:"displayText"`
}

// VenueRequest represents the create/update payload for a venue
type VenueRequest struct {
	Name         string                   `json:"name" binding:"required,min=2,max=200"`
	Slug         string                   `json:"slug"`
	Description  string                   `json:"description" binding:"required,min=10"`
	Location     string                   `json:"location" binding:"required"`
	Address      models.VenueAddress      `json:"address"`
	Capacity     VenueCapacityRequest     `json:"capacity" binding:"required"`
	Style        []string                 `json:"style" binding:"required,min=1"`
	PriceRange   string                   `json:"priceRange" binding:"required,oneof=$ $$ $$$ $$$$"`
	Category     string                   `json:"category" binding:"omitempty,oneof=Exclusive Featured Partner"`
	VenueType    []string                 `json:"venueType"`
	Spaces       *models.VenueSpaces      `json:"spaces"`
	Images       []models.VenueImage      `json:"images"`
	Amenities    []models.VenueAmenity    `json:"amenities"`
	Website      string                   `json:"website" binding:"omitempty,url"`
	Contact      models.VenueContact      `json:"contact"`
	Pricing      models.VenuePricing      `json:"pricing"`
	Availability models.VenueAvailability `json:"availability"`
	Features     []string                 `json:"features"`
	Restrictions []string                 `json:"restrictions"`
	IsActive     *bool                    `json:"isActive"`
	IsFeatured   *bool                    `json:"isFeatured"`
	IsExclusive  *bool                    `json:"isExclusive"`
	DisplayOrder int                      `json:"displayOrder" binding:"gte=0"`
	SEO          models.SEOFields         `json:"seo"`
	SocialMedia  models.SocialMedia       `json:"socialMedia"`
	Tags         []string                 `json:"tags"`
}

// keepValidImages drops image entries that carry no URL.
func keepValidImages(images []models.VenueImage) []models.VenueImage {
	kept := make([]models.VenueImage, 0, len(images))
	for _, img := range images {
		if strings.TrimSpace(img.URL) != "" {
			kept = append(kept, img)
		}
	}
	return kept
}

func applyVenueRequest(venue *models.Venue, req VenueRequest) {
	venue.Name = req.Name
	venue.Description = req.Description
	venue.Location = req.Location
	venue.Address = req.Address
	venue.Capacity = models.VenueCapacity{
		Seated:      req.Capacity.Seated,
		Standing:    req.Capacity.Standing,
		DisplayText: req.Capacity.DisplayText,
	}
	venue.Style = req.Style
	venue.PriceRange = req.PriceRange
	venue.Category = req.Category
	if venue.Category == "" {
		venue.Category = models.VenueCategoryPartner
	}
	venue.VenueType = req.VenueType
	if req.Spaces != nil {
		venue.Spaces = *req.Spaces
	} else {
		venue.Spaces = models.VenueSpaces{HasIndoorSpace: true, HasParking: true}
	}
	venue.Images = keepValidImages(req.Images)
	venue.Amenities = req.Amenities
	venue.Website = req.Website
	venue.Contact = req.Contact
	venue.Pricing = req.Pricing
	venue.Availability = req.Availability
	venue.Features = req.Features
	venue.Restrictions = req.Restrictions
	venue.IsActive = req.IsActive == nil || *req.IsActive
	venue.IsFeatured = req.IsFeatured != nil && *req.IsFeatured
	venue.IsExclusive = req.IsExclusive != nil && *req.IsExclusive
	venue.DisplayOrder = req.DisplayOrder
	venue.SEO = req.SEO
	venue.SocialMedia = req.SocialMedia
	venue.Tags = req.Tags
}

// GetVenues lists venues with the public filter set
// @Summary List venues
// @Description Lists venues with category, capacity, space, price and location filters. Inactive venues are hidden unless active=all is requested.
// @Tags venues
// @Produce json
// @Param active query string false "true, false or all (default: true)"
// @Param category query string false "Exclusive, Featured or Partner"
// @Param featured query bool false "Only featured venues"
// @Param exclusive query bool false "Only exclusive venues"
// @Param location query string false "Location substring match"
// @Param venueType query string false "Venue type tag"
// @Param style query string false "Style tag"
// @Param minCapacity query int false "Minimum seated capacity"
// @Param maxCapacity query int false "Maximum seated capacity"
// @Param hasOutdoorSpace query bool false "Requires outdoor space"
// @Param hasIndoorSpace query bool false "Requires indoor space"
// @Param priceRange query string false "Price tier"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page (unpaged when omitted)"
// @Success 200 {object} map[string]interface{}
// @Router /venues [get]
func GetVenues(ctx *gin.Context) {
	params := query.ParseListParams(ctx, 0, "", "")

	dbQuery := database.DB.Model(&models.Venue{})

	if active := query.ActiveFlag(ctx); active != nil {
		dbQuery = dbQuery.Where("is_active = ?", *active)
	}
	if category := ctx.Query("category"); category != "" {
		dbQuery = dbQuery.Where("category = ?", category)
	}
	if featured := query.BoolFlag(ctx, "featured"); featured != nil {
		dbQuery = dbQuery.Where("is_featured = ?", *featured)
	}
	if exclusive := query.BoolFlag(ctx, "exclusive"); exclusive != nil {
		dbQuery = dbQuery.Where("is_exclusive = ?", *exclusive)
	}
	if location := ctx.Query("location"); location != "" {
		dbQuery = dbQuery.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}
	if venueType := ctx.Query("venueType"); venueType != "" {
		dbQuery = query.JSONArrayContains(dbQuery, "venue_type", venueType)
	}
	if style := ctx.Query("style"); style != "" {
		dbQuery = query.JSONArrayContains(dbQuery, "style", style)
	}
	if minCapacity := ctx.Query("minCapacity"); minCapacity != "" {
		if v, err := strconv.Atoi(minCapacity); err == nil {
			dbQuery = dbQuery.Where("capacity_seated >= ?", v)
		}
	}
	if maxCapacity := ctx.Query("maxCapacity"); maxCapacity != "" {
		if v, err := strconv.Atoi(maxCapacity); err == nil {
			dbQuery = dbQuery.Where("capacity_seated <= ?", v)
		}
	}
	if outdoor := query.BoolFlag(ctx, "hasOutdoorSpace"); outdoor != nil {
		dbQuery = dbQuery.Where("spaces_has_outdoor_space = ?", *outdoor)
	}
	if indoor := query.BoolFlag(ctx, "hasIndoorSpace"); indoor != nil {
		dbQuery = dbQuery.Where("spaces_has_indoor_space = ?", *indoor)
	}
	if priceRange := ctx.Query("priceRange"); priceRange != "" {
		dbQuery = dbQuery.Where("price_range = ?", priceRange)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		respondServerError(ctx, "Failed to count venues")
		return
	}

	allowedSort := map[string]string{
		"name":         "name",
		"displayOrder": "display_order",
		"createdAt":    "created_at",
		"capacity":     "capacity_seated",
	}
	dbQuery = query.ApplySort(dbQuery, params, allowedSort, "category ASC, display_order ASC, created_at DESC")
	dbQuery = query.ApplyPagination(dbQuery, params)

	var venues []models.Venue
	if err := dbQuery.Find(&venues).Error; err != nil {
		respondServerError(ctx, "Failed to fetch venues")
		return
	}

	respondList(ctx, venues, query.BuildPagination(params, total))
}

// GetVenueCategories summarizes active venues by category, type and location
// @Summary List venue categories
// @Description Grouped counts over active venues: category, venue type and location
// @Tags venues
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /venues/categories [get]
func GetVenueCategories(ctx *gin.Context) {
	activeVenues := func() *gorm.DB {
		return database.DB.Model(&models.Venue{}).Where("is_active = ?", true)
	}

	categoryCounts, err := groupCounts(activeVenues(), "category")
	if err != nil {
		respondServerError(ctx, "Failed to fetch venue categories")
		return
	}

	categories := make([]gin.H, 0, len(categoryCounts))
	for _, name := range []string{models.VenueCategoryExclusive, models.VenueCategoryFeatured, models.VenueCategoryPartner} {
		if count, ok := categoryCounts[name]; ok {
			categories = append(categories, gin.H{"category": name, "count": count})
		}
	}

	locationCounts, err := groupCounts(activeVenues(), "location")
	if err != nil {
		respondServerError(ctx, "Failed to fetch venue categories")
		return
	}

	// venue_type is a json array column, so types are tallied in memory
	var typed []models.Venue
	if err := activeVenues().Select("venue_type").Find(&typed).Error; err != nil {
		respondServerError(ctx, "Failed to fetch venue categories")
		return
	}
	typeCounts := make(map[string]int64)
	for _, venue := range typed {
		for _, venueType := range venue.VenueType {
			typeCounts[venueType]++
		}
	}

	respondData(ctx, http.StatusOK, gin.H{
		"categories": categories,
		"venueTypes": typeCounts,
		"locations":  locationCounts,
	})
}

// GetVenue fetches a single venue by id
// @Summary Get venue by ID
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /venues/{id} [get]
func GetVenue(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid venue ID")
		return
	}

	var venue models.Venue
	if err := database.DB.First(&venue, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Venue not found")
		return
	}

	respondData(ctx, http.StatusOK, venue)
}

// GetVenueBySlug fetches a single active venue by slug
// @Summary Get venue by slug
// @Tags venues
// @Produce json
// @Param slug path string true "Venue slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /venues/slug/{slug} [get]
func GetVenueBySlug(ctx *gin.Context) {
	var venue models.Venue
	if err := database.DB.Where("slug = ? AND is_active = ?", ctx.Param("slug"), true).First(&venue).Error; err != nil {
		respondNotFound(ctx, "Venue not found")
		return
	}

	respondData(ctx, http.StatusOK, venue)
}

// CreateVenue creates a venue
// @Summary Create venue
// @Tags venues
// @Accept json
// @Produce json
// @Param request body handlers.VenueRequest true "Venue"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Validation error or duplicate slug"
// @Router /venues [post]
func CreateVenue(ctx *gin.Context) {
	var req VenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	venueSlug := req.Slug
	if venueSlug == "" {
		venueSlug = slug.Generate(req.Name)
	}
	taken, err := slugTaken(&models.Venue{}, venueSlug, nil)
	if err != nil {
		respondServerError(ctx, "Failed to create venue")
		return
	}
	if taken {
		respondBadRequest(ctx, "Venue with this slug already exists")
		return
	}

	var venue models.Venue
	venue.Slug = venueSlug
	applyVenueRequest(&venue, req)

	if err := database.DB.Create(&venue).Error; err != nil {
		respondServerError(ctx, "Failed to create venue")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Venue created",
		"data":    venue,
	})
}

// UpdateVenue replaces the editable fields of a venue
// @Summary Update venue
// @Tags venues
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param request body handlers.VenueRequest true "Venue"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Validation error or duplicate slug"
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /venues/{id} [put]
func UpdateVenue(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid venue ID")
		return
	}

	var req VenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	var venue models.Venue
	if err := database.DB.First(&venue, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Venue not found")
		return
	}

	if req.Slug != "" && req.Slug != venue.Slug {
		taken, err := slugTaken(&models.Venue{}, req.Slug, &venue.ID)
		if err != nil {
			respondServerError(ctx, "Failed to update venue")
			return
		}
		if taken {
			respondBadRequest(ctx, "Venue with this slug already exists")
			return
		}
		venue.Slug = req.Slug
	}

	applyVenueRequest(&venue, req)

	if err := database.DB.Save(&venue).Error; err != nil {
		respondServerError(ctx, "Failed to update venue")
		return
	}

	respondData(ctx, http.StatusOK, venue)
}

// ReorderVenue moves a venue to a new display position
// @Summary Reorder venue
// @Tags venues
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param request body handlers.DisplayOrderRequest true "New display order"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /venues/{id}/reorder [put]
func ReorderVenue(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid venue ID")
		return
	}

	var req DisplayOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	var venue models.Venue
	if err := database.DB.First(&venue, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Venue not found")
		return
	}

	venue.DisplayOrder = *req.DisplayOrder
	if err := database.DB.Save(&venue).Error; err != nil {
		respondServerError(ctx, "Failed to reorder venue")
		return
	}

	respondData(ctx, http.StatusOK, venue)
}

// DeleteVenue removes a venue
// @Summary Delete venue
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /venues/{id} [delete]
func DeleteVenue(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid venue ID")
		return
	}

	var venue models.Venue
	if err := database.DB.First(&venue, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Venue not found")
		return
	}

	if err := database.DB.Delete(&venue).Error; err != nil {
		respondServerError(ctx, "Failed to delete venue")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Venue deleted",
	})
}
