package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"marigold-backend/shared/database"
	"marigold-backend/shared/utils/query"
	"marigold-backend/shared/utils/validation"
)

// PaginationResponse documents the pagination block in list responses
type PaginationResponse struct {
	Current int  `json:"current"`
	Total   int  `json:"total"`
	Count   int  `json:"count"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
}

// MessageResponse documents simple success/error envelopes
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DisplayOrderRequest moves a record to a new manual sort position
type DisplayOrderRequest struct {
	DisplayOrder *int `json:"displayOrder" binding:"required,gte=0"`
}

func respondValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Validation failed",
		"errors":  validation.FormatBindingError(err),
	})
}

func respondBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": message,
	})
}

func respondNotFound(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"message": message,
	})
}

func respondServerError(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": message,
	})
}

func respondData(ctx *gin.Context, status int, data interface{}) {
	ctx.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// slugTaken reports whether another record already uses the slug.
func slugTaken(model interface{}, slugValue string, excludeID *uuid.UUID) (bool, error) {
	dbQuery := database.DB.Model(model).Where("slug = ?", slugValue)
	if excludeID != nil {
		dbQuery = dbQuery.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := dbQuery.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// groupCounts tallies rows per distinct value of the given column.
func groupCounts(dbQuery *gorm.DB, column string) (map[string]int64, error) {
	var rows []struct {
		Value string
		Count int64
	}
	if err := dbQuery.Select(column + " as value, count(*) as count").Group(column).Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Value] = row.Count
	}
	return counts, nil
}

// respondList wraps items in the standard list envelope. The pagination
// block is present only when the caller asked for a bounded page.
func respondList(ctx *gin.Context, items interface{}, pagination *query.Pagination) {
	data := gin.H{"items": items}
	if pagination != nil {
		data["pagination"] = pagination
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}
