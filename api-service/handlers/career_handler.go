package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"marigold-backend/shared/database"
	"marigold-backend/shared/database/models"
	"marigold-backend/shared/utils/query"

	"marigold-backend/api-service/services"
)

// ResumeRequest represents the uploaded resume reference in an application
type ResumeRequest struct {
	URL          string `json:"url" binding:"required,url"`
	OriginalName string `json:"originalName" binding:"required"`
	FileType     string `json:"fileType" binding:"required"`
	FileSize     int64  `json:"fileSize" binding:"required,gt=0"`
	Key          string `json:"key" binding:"required"`
}

// CreateCareerApplicationRequest represents the public application payload
type CreateCareerApplicationRequest struct {
	Name   string        `json:"name" binding:"required,min=2,max=100"`
	Email  string        `json:"email" binding:"required,email"`
	Phone  string        `json:"phone" binding:"required,min=10,max=20"`
	Role   string        `json:"role" binding:"required,min=2,max=100"`
	Resume ResumeRequest `json:"resume" binding:"required"`
}

// UpdateCareerApplicationRequest carries the only fields admins may edit.
// Anything else in the payload is ignored.
type UpdateCareerApplicationRequest struct {
	Status        *string    `json:"status" binding:"omitempty,oneof=new reviewing interview hired rejected archived"`
	Notes         *string    `json:"notes"`
	ReviewedBy    *string    `json:"reviewedBy"`
	ReviewedAt    *time.Time `json:"reviewedAt"`
	InterviewDate *time.Time `json:"interviewDate"`
	Rating        *int       `json:"rating" binding:"omitempty,gte=1,lte=5"`
	Tags          *[]string  `json:"tags"`
}

// applyAllowedUpdates merges the whitelisted fields into the application.
// Moving out of "new" into "reviewing" stamps the review time once.
func applyAllowedUpdates(app *models.CareerApplication, req UpdateCareerApplicationRequest) {
	if req.Status != nil {
		if *req.Status == models.ApplicationStatusReviewing && app.Status != models.ApplicationStatusReviewing && app.ReviewedAt == nil {
			now := time.Now()
			app.ReviewedAt = &now
		}
		app.Status = *req.Status
	}
	if req.Notes != nil {
		app.Notes = *req.Notes
	}
	if req.ReviewedBy != nil {
		app.ReviewedBy = *req.ReviewedBy
	}
	if req.ReviewedAt != nil {
		app.ReviewedAt = req.ReviewedAt
	}
	if req.InterviewDate != nil {
		app.InterviewDate = req.InterviewDate
	}
	if req.Rating != nil {
		app.Rating = req.Rating
	}
	if req.Tags != nil {
		app.Tags = *req.Tags
	}
}

// CreateCareerApplication accepts a public job application
// @Summary Submit job application
// @Description Stores a job application with its uploaded resume reference
// @Tags careers
// @Accept json
// @Produce json
// @Param request body handlers.CreateCareerApplicationRequest true "Application"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Router /careers [post]
func CreateCareerApplication(ctx *gin.Context) {
	var req CreateCareerApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	app := models.CareerApplication{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Role:   req.Role,
		Resume: models.Resume{
			URL:          req.Resume.URL,
			OriginalName: req.Resume.OriginalName,
			FileType:     req.Resume.FileType,
			FileSize:     req.Resume.FileSize,
			Key:          req.Resume.Key,
		},
		Status:    models.ApplicationStatusNew,
		Source:    "website",
		IPAddress: ctx.ClientIP(),
		UserAgent: ctx.Request.UserAgent(),
	}

	if err := database.DB.Create(&app).Error; err != nil {
		respondServerError(ctx, "Failed to save application")
		return
	}

	services.GetNotificationHub().Notify("career_application.created", "New job application received", gin.H{
		"id":   app.ID,
		"name": app.Name,
		"role": app.Role,
	})

	// Applicants get an acknowledgement, not the stored record
	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Thank you for applying! We will review your application and get back to you.",
		"data": gin.H{
			"id":        app.ID,
			"name":      app.Name,
			"email":     app.Email,
			"role":      app.Role,
			"status":    app.Status,
			"createdAt": app.CreatedAt,
		},
	})
}

// GetCareerApplications lists job applications for admins
// @Summary List job applications
// @Description Paginated list with status, role and archived filters. Archived applications are hidden unless requested.
// @Tags careers
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 50)"
// @Param status query string false "Filter by status"
// @Param role query string false "Filter by role"
// @Param archived query string false "true, false or all (default: false)"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /careers [get]
func GetCareerApplications(ctx *gin.Context) {
	params := query.ParseListParams(ctx, 50, "created_at", "desc")

	dbQuery := database.DB.Model(&models.CareerApplication{})

	switch ctx.DefaultQuery("archived", "false") {
	case "true":
		dbQuery = dbQuery.Where("is_archived = ?", true)
	case "all":
	default:
		dbQuery = dbQuery.Where("is_archived = ?", false)
	}

	if status := ctx.Query("status"); status != "" {
		dbQuery = dbQuery.Where("status = ?", status)
	}
	if role := ctx.Query("role"); role != "" {
		dbQuery = dbQuery.Where("role = ?", role)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		respondServerError(ctx, "Failed to count applications")
		return
	}

	allowedSort := map[string]string{
		"createdAt": "created_at",
		"status":    "status",
		"role":      "role",
		"rating":    "rating",
	}
	dbQuery = query.ApplySort(dbQuery, params, allowedSort, "created_at DESC")
	dbQuery = query.ApplyPagination(dbQuery, params)

	var apps []models.CareerApplication
	if err := dbQuery.Find(&apps).Error; err != nil {
		respondServerError(ctx, "Failed to fetch applications")
		return
	}

	respondList(ctx, apps, query.BuildPagination(params, total))
}

// GetCareerStats summarizes applications for the admin dashboard
// @Summary Application statistics
// @Description Counts by status, recent submissions and the most applied-for roles
// @Tags careers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /careers/stats [get]
func GetCareerStats(ctx *gin.Context) {
	db := database.DB
	active := db.Model(&models.CareerApplication{}).Where("is_archived = ?", false)

	var total int64
	if err := db.Model(&models.CareerApplication{}).Where("is_archived = ?", false).Count(&total).Error; err != nil {
		respondServerError(ctx, "Failed to compute application statistics")
		return
	}

	byStatus, err := groupCounts(active, "status")
	if err != nil {
		respondServerError(ctx, "Failed to compute application statistics")
		return
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	var recent int64
	if err := db.Model(&models.CareerApplication{}).
		Where("is_archived = ? AND created_at >= ?", false, weekAgo).
		Count(&recent).Error; err != nil {
		respondServerError(ctx, "Failed to compute application statistics")
		return
	}

	var topRoles []struct {
		Role  string `json:"role"`
		Count int64  `json:"count"`
	}
	if err := db.Model(&models.CareerApplication{}).
		Select("role, count(*) as count").
		Where("is_archived = ?", false).
		Group("role").
		Order("count DESC").
		Limit(10).
		Scan(&topRoles).Error; err != nil {
		respondServerError(ctx, "Failed to compute application statistics")
		return
	}

	respondData(ctx, http.StatusOK, gin.H{
		"total":       total,
		"byStatus":    byStatus,
		"recentCount": recent,
		"topRoles":    topRoles,
	})
}

// GetCareerApplication fetches a single application
// @Summary Get job application
// @Tags careers
// @Produce json
// @Param id path string true "Application ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /careers/{id} [get]
func GetCareerApplication(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid application ID")
		return
	}

	var app models.CareerApplication
	if err := database.DB.First(&app, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Application not found")
		return
	}

	respondData(ctx, http.StatusOK, app)
}

// UpdateCareerApplication updates the reviewable fields of an application
// @Summary Update job application
// @Description Updates status, notes, reviewer, interview date, rating and tags. Other fields are ignored.
// @Tags careers
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body handlers.UpdateCareerApplicationRequest true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /careers/{id} [put]
func UpdateCareerApplication(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid application ID")
		return
	}

	var req UpdateCareerApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	var app models.CareerApplication
	if err := database.DB.First(&app, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Application not found")
		return
	}

	applyAllowedUpdates(&app, req)

	if err := database.DB.Save(&app).Error; err != nil {
		respondServerError(ctx, "Failed to update application")
		return
	}

	respondData(ctx, http.StatusOK, app)
}

// ArchiveCareerApplication moves an application out of active review
// @Summary Archive job application
// @Tags careers
// @Produce json
// @Param id path string true "Application ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /careers/{id}/archive [post]
func ArchiveCareerApplication(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid application ID")
		return
	}

	var app models.CareerApplication
	if err := database.DB.First(&app, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Application not found")
		return
	}

	app.IsArchived = true
	app.Status = models.ApplicationStatusArchived

	if err := database.DB.Save(&app).Error; err != nil {
		respondServerError(ctx, "Failed to archive application")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Application archived",
		"data":    app,
	})
}

// DeleteCareerApplication removes an application
// @Summary Delete job application
// @Tags careers
// @Produce json
// @Param id path string true "Application ID"
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /careers/{id} [delete]
func DeleteCareerApplication(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid application ID")
		return
	}

	var app models.CareerApplication
	if err := database.DB.First(&app, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Application not found")
		return
	}

	if err := database.DB.Delete(&app).Error; err != nil {
		respondServerError(ctx, "Failed to delete application")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Application deleted",
	})
}
