package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"marigold-backend/shared/database"
	"marigold-backend/shared/database/models"
	"marigold-backend/shared/utils/query"
)

// CreateTeamMemberRequest represents the payload for adding a team member
type CreateTeamMemberRequest struct {
	Name             string   `json:"name" binding:"required,min=2,max=100"`
	Role             string   `json:"role" binding:"required,min=2,max=100"`
	FavoriteMenuItem string   `json:"favoriteMenuItem" binding:"max=100"`
	Image            string   `json:"image"`
	ImageKey         string   `json:"imageKey"`
	Bio              string   `json:"bio" binding:"max=500"`
	Specialties      []string `json:"specialties"`
	DisplayOrder     int      `json:"displayOrder" binding:"gte=0"`
	IsActive         *bool    `json:"isActive"`
}

// UpdateTeamMemberRequest represents a partial team member update
type UpdateTeamMemberRequest struct {
	Name             *string   `json:"name" binding:"omitempty,min=2,max=100"`
	Role             *string   `json:"role" binding:"omitempty,min=2,max=100"`
	FavoriteMenuItem *string   `json:"favoriteMenuItem" binding:"omitempty,max=100"`
	Image            *string   `json:"image"`
	ImageKey         *string   `json:"imageKey"`
	Bio              *string   `json:"bio" binding:"omitempty,max=500"`
	Specialties      *[]string `json:"specialties"`
	DisplayOrder     *int      `json:"displayOrder" binding:"omitempty,gte=0"`
	IsActive         *bool     `json:"isActive"`
}

// ReorderItem pairs a team member with its new display position
type ReorderItem struct {
	ID           uuid.UUID `json:"id" binding:"required"`
	DisplayOrder *int      `json:"displayOrder" binding:"required,gte=0"`
}

// ReorderTeamRequest represents the bulk reorder payload
type ReorderTeamRequest struct {
	Members []ReorderItem `json:"members" binding:"required,min=1,dive"`
}

// GetTeamMembers lists team members
// @Summary List team members
// @Description Lists team members in display order. Inactive members are hidden unless active=all is requested.
// @Tags team
// @Produce json
// @Param active query string false "true, false or all (default: true)"
// @Param hasPhoto query bool false "Only members with (or without) a photo"
// @Success 200 {object} map[string]interface{}
// @Router /team [get]
func GetTeamMembers(ctx *gin.Context) {
	params := query.ParseListParams(ctx, 0, "displayOrder", "asc")

	dbQuery := database.DB.Model(&models.TeamMember{})
	if active := query.ActiveFlag(ctx); active != nil {
		dbQuery = dbQuery.Where("is_active = ?", *active)
	}
	if hasPhoto := query.BoolFlag(ctx, "hasPhoto"); hasPhoto != nil {
		dbQuery = dbQuery.Where("has_photo = ?", *hasPhoto)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		respondServerError(ctx, "Failed to count team members")
		return
	}

	allowedSort := map[string]string{
		"name":         "name",
		"displayOrder": "display_order",
		"createdAt":    "created_at",
	}
	dbQuery = query.ApplySort(dbQuery, params, allowedSort, "display_order ASC, created_at DESC")
	dbQuery = query.ApplyPagination(dbQuery, params)

	var members []models.TeamMember
	if err := dbQuery.Find(&members).Error; err != nil {
		respondServerError(ctx, "Failed to fetch team members")
		return
	}

	respondList(ctx, members, query.BuildPagination(params, total))
}

// listTeamByPhoto returns active members filtered on the has_photo flag
func listTeamByPhoto(ctx *gin.Context, hasPhoto bool) {
	var members []models.TeamMember
	err := database.DB.
		Where("is_active = ? AND has_photo = ?", true, hasPhoto).
		Order("display_order ASC, created_at DESC").
		Find(&members).Error
	if err != nil {
		respondServerError(ctx, "Failed to fetch team members")
		return
	}

	respondList(ctx, members, nil)
}

// GetTeamMembersWithPhotos lists active members that have a photo
// @Summary List team members with photos
// @Tags team
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /team/with-photos [get]
func GetTeamMembersWithPhotos(ctx *gin.Context) {
	listTeamByPhoto(ctx, true)
}

// GetTeamMembersWithoutPhotos lists active members without a photo
// @Summary List team members without photos
// @Tags team
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /team/without-photos [get]
func GetTeamMembersWithoutPhotos(ctx *gin.Context) {
	listTeamByPhoto(ctx, false)
}

// GetTeamMember fetches a single team member
// @Summary Get team member
// @Tags team
// @Produce json
// @Param id path string true "Team member ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /team/{id} [get]
func GetTeamMember(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid team member ID")
		return
	}

	var member models.TeamMember
	if err := database.DB.First(&member, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Team member not found")
		return
	}

	respondData(ctx, http.StatusOK, member)
}

// CreateTeamMember adds a team member
// @Summary Create team member
// @Tags team
// @Accept json
// @Produce json
// @Param request body handlers.CreateTeamMemberRequest true "Team member"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Router /team [post]
func CreateTeamMember(ctx *gin.Context) {
	var req CreateTeamMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	member := models.TeamMember{
		Name:             req.Name,
		Role:             req.Role,
		FavoriteMenuItem: req.FavoriteMenuItem,
		Image:            req.Image,
		ImageKey:         req.ImageKey,
		HasPhoto:         req.Image != "",
		Bio:              req.Bio,
		Specialties:      req.Specialties,
		DisplayOrder:     req.DisplayOrder,
		IsActive:         req.IsActive == nil || *req.IsActive,
	}

	if err := database.DB.Create(&member).Error; err != nil {
		respondServerError(ctx, "Failed to create team member")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Team member created",
		"data":    member,
	})
}

// UpdateTeamMember updates the provided fields of a team member
// @Summary Update team member
// @Tags team
// @Accept json
// @Produce json
// @Param id path string true "Team member ID"
// @Param request body handlers.UpdateTeamMemberRequest true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /team/{id} [put]
func UpdateTeamMember(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid team member ID")
		return
	}

	var req UpdateTeamMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	var member models.TeamMember
	if err := database.DB.First(&member, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Team member not found")
		return
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Role != nil {
		member.Role = *req.Role
	}
	if req.FavoriteMenuItem != nil {
		member.FavoriteMenuItem = *req.FavoriteMenuItem
	}
	if req.Image != nil {
		member.Image = *req.Image
		member.HasPhoto = *req.Image != ""
	}
	if req.ImageKey != nil {
		member.ImageKey = *req.ImageKey
	}
	if req.Bio != nil {
		member.Bio = *req.Bio
	}
	if req.Specialties != nil {
		member.Specialties = *req.Specialties
	}
	if req.DisplayOrder != nil {
		member.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&member).Error; err != nil {
		respondServerError(ctx, "Failed to update team member")
		return
	}

	respondData(ctx, http.StatusOK, member)
}

// ReorderTeamMembers updates display positions in bulk
// @Summary Reorder team members
// @Description Applies new display positions to the listed members in one transaction
// @Tags team
// @Accept json
// @Produce json
// @Param request body handlers.ReorderTeamRequest true "New ordering"
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Router /team/reorder [put]
func ReorderTeamMembers(ctx *gin.Context) {
	var req ReorderTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	var unknown []string
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Members {
			result := tx.Model(&models.TeamMember{}).
				Where("id = ?", item.ID).
				Update("display_order", *item.DisplayOrder)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				unknown = append(unknown, item.ID.String())
			}
		}
		if len(unknown) > 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(ctx, "Team members not found: "+strings.Join(unknown, ", "))
			return
		}
		respondServerError(ctx, "Failed to reorder team members")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Team members reordered",
	})
}

// ReorderTeamMember moves one member to a new display position
// @Summary Reorder team member
// @Tags team
// @Accept json
// @Produce json
// @Param id path string true "Team member ID"
// @Param request body handlers.DisplayOrderRequest true "New display order"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /team/{id}/reorder [put]
func ReorderTeamMember(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid team member ID")
		return
	}

	var req DisplayOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	var member models.TeamMember
	if err := database.DB.First(&member, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Team member not found")
		return
	}

	member.DisplayOrder = *req.DisplayOrder
	if err := database.DB.Save(&member).Error; err != nil {
		respondServerError(ctx, "Failed to reorder team member")
		return
	}

	respondData(ctx, http.StatusOK, member)
}

// DeleteTeamMember removes a team member
// @Summary Delete team member
// @Tags team
// @Produce json
// @Param id path string true "Team member ID"
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.MessageResponse "Not found"
// @Router /team/{id} [delete]
func DeleteTeamMember(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid team member ID")
		return
	}

	var member models.TeamMember
	if err := database.DB.First(&member, "id = ?", id).Error; err != nil {
		respondNotFound(ctx, "Team member not found")
		return
	}

	if err := database.DB.Delete(&member).Error; err != nil {
		respondServerError(ctx, "Failed to delete team member")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Team member deleted",
	})
}
