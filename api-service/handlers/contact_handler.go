package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"marigold-backend/shared/config"
	"marigold-backend/shared/database"
	"marigold-backend/shared/database/models"
	"marigold-backend/shared/utils/query"

	"marigold-backend/api-service/services"
)

// CreateContactRequest represents the public contact form payload
type CreateContactRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=100" example:"Jane Smith"`
	Email     string `json:"email" binding:"required,email" example:"jane@example.com"`
	Phone     string `json:"phone" binding:"required,min=10,max=20" example:"555-123-4567"`
	EventType string `json:"eventType" binding:"required,oneof=wedding corporate social other" example:"wedding"`
	Message   string `json:"message" binding:"required,min=10,max=1000" example:"We are planning a reception for 150 guests."`
}

// UpdateContactRequest represents the admin-side contact update payload
type UpdateContactRequest struct {
	Status       *string    `json:"status" binding:"omitempty,oneof=new contacted in_progress completed cancelled"`
	Priority     *string    `json:"priority" binding:"omitempty,oneof=low medium high"`
	Notes        *string    `json:"notes"`
	FollowUpDate *time.Time `json:"followUpDate"`
}

// CreateContact accepts a public contact form submission
// @Summary Submit contact form
// @Description Stores a contact inquiry and notifies the catering team
// @Tags contact
// @Accept json
// @Produce json
// @Param request body handlers.CreateContactRequest true "Contact form"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Router /contacts [post]
func CreateContact(ctx *gin.Context) {
	var req CreateContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	contact := models.Contact{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		EventType: req.EventType,
		Message:   req.Message,
		Status:    models.ContactStatusNew,
		Priority:  "medium",
	}

	if err := database.DB.Create(&contact).Error; err != nil {
		respondServerError(ctx, "Failed to save contact inquiry")
		return
	}

	// Notifications must never block or fail the submission.
	go services.NewEmailService(config.GetConfig()).SendContactFormEmails(contact)
	services.GetNotificationHub().Notify("contact.created", "New contact inquiry received", gin.H{
		"id":        contact.ID,
		"name":      contact.Name,
		"eventType": contact.EventType,
	})

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Thank you for your inquiry! We will contact you soon.",
		"data":    contact,
	})
}

// GetContacts lists contact inquiries for admins
// @Summary List contact inquiries
// @Description Paginated list of contact inquiries with status, event type and priority filters
// @Tags contact
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10)"
// @Param status query string false "Filter by status"
// @Param eventType query string false "Filter by event type"
// @Param priority query string false "Filter by priority"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /contacts [get]
func GetContacts(ctx *gin.Context) {
	params := query.ParseListParams(ctx, 10, "created_at", "desc")

	dbQuery := database.DB.Model(&models.Contact{})
	if status := ctx.Query("status"); status != "" {
		dbQuery = dbQuery.Where("status = ?", status)
	}
	if eventType := ctx.Query("eventType"); eventType != "" {
		dbQuery = dbQuery.Where("event_type = ?", eventType)
	}
	if priority := ctx.Query("priority"); priority != "" {
		dbQuery = dbQuery.Where("priority = ?", priority)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		respondServerError(ctx, "Failed to count contact inquiries")
		return
	}

	allowedSort := map[string]string{
		"createdAt": "created_at",
		"status":    "status",
		"priority":  "priority",
		"name":      "name",
	}
	dbQuery = query.ApplySort(dbQuery, params, allowedSort, "created_at DESC")
	dbQuery = query.ApplyPagination(dbQuery, params)

	var contacts []models.Contact
	if err := dbQuery.Find(&contacts).Error; err != nil {
		respondServerError(ctx, "Failed to fetch contact inquiries")
		return
	}

	respondList(ctx, contacts, query.BuildPagination(params, total))
}

// GetContactStats summarizes contact inquiries for the admin dashboard
// @Summary Contact statistics
// @Description Counts by status, by event type and recent submissions
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /contacts/stats [get]
func GetContactStats(ctx *gin.Context) {
	db := database.DB

	var total int64
	if err := db.Model(&models.Contact{}).Count(&total).Error; err != nil {
		respondServerError(ctx, "Failed to compute contact statistics")
		return
	}

	byStatus, err := groupCounts(db.Model(&models.Contact{}), "status")
	if err != nil {
		respondServerError(ctx, "Failed to compute contact statistics")
		return
	}
	byEventType, err := groupCounts(db.Model(&models.Contact{}), "event_type")
	if err != nil {
		respondServerError(ctx, "Failed to compute contact statistics")
		return
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	var recent int64
	if err := db.Model(&models.Contact{}).Where("created_at >= ?", weekAgo).Count(&recent).Error; err != nil {
		respondServerError(ctx, "Failed to compute contact statistics")
		return
	}

	respondData(ctx, http.StatusOK, gin.H{
		"total":       total,
		"byStatus":    byStatus,
		"byEventType": byEventType,
		"recentCount": recent,
	})
}

// GetContact fetches a single contact inquiry
// @Summary Get contact inquiry
// @Tags contact
// @Produce json
// @Param id path string true "Contact ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /contacts/{id} [get]
func GetContact(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid contact ID")
		return
	}

	var contact models.Contact
	if err := database.DB.First(&contact, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Contact inquiry not found")
		return
	}

	respondData(ctx, http.StatusOK, contact)
}

// UpdateContact updates the workflow fields of a contact inquiry
// @Summary Update contact inquiry
// @Description Updates status, priority, notes and follow-up date
// @Tags contact
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param request body handlers.UpdateContactRequest true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /contacts/{id} [put]
func UpdateContact(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid contact ID")
		return
	}

	var req UpdateContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	var contact models.Contact
	if err := database.DB.First(&contact, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Contact inquiry not found")
		return
	}

	if req.Status != nil {
		// Record first outreach when the inquiry leaves the "new" state.
		if contact.Status == models.ContactStatusNew && *req.Status != models.ContactStatusNew && contact.ContactedAt == nil {
			now := time.Now()
			contact.ContactedAt = &now
		}
		contact.Status = *req.Status
	}
	if req.Priority != nil {
		contact.Priority = *req.Priority
	}
	if req.Notes != nil {
		contact.Notes = *req.Notes
	}
	if req.FollowUpDate != nil {
		contact.FollowUpDate = req.FollowUpDate
	}

	if err := database.DB.Save(&contact).Error; err != nil {
		respondServerError(ctx, "Failed to update contact inquiry")
		return
	}

	respondData(ctx, http.StatusOK, contact)
}

// DeleteContact removes a contact inquiry
// @Summary Delete contact inquiry
// @Tags contact
// @Produce json
// @Param id path string true "Contact ID"
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /contacts/{id} [delete]
func DeleteContact(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid contact ID")
		return
	}

	var contact models.Contact
	if err := database.DB.First(&contact, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Contact inquiry not found")
		return
	}

	if err := database.DB.Delete(&contact).Error; err != nil {
		respondServerError(ctx, "Failed to delete contact inquiry")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Contact inquiry deleted",
	})
}
