package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListParams represents pagination and sorting parameters shared by list endpoints.
// Limit 0 means the endpoint returns all matches unpaged.
type ListParams struct {
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

// Pagination represents pagination metadata returned alongside paged lists.
// Total is the number of pages, Count the number of matching records.
type Pagination struct {
	Current int   `json:"current"`
	Total   int64 `json:"total"`
	Count   int64 `json:"count"`
	HasNext bool  `json:"hasNext"`
	HasPrev bool  `json:"hasPrev"`
}

// ParseListParams extracts page/limit/sortBy/sortOrder from the query string.
// defaultLimit 0 keeps the endpoint unpaged unless the caller supplies a limit.
func ParseListParams(c *gin.Context, defaultLimit int, defaultSortBy, defaultSortOrder string) ListParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > 100 {
		limit = 100
	}

	sortBy := c.DefaultQuery("sortBy", defaultSortBy)
	sortOrder := strings.ToLower(c.DefaultQuery("sortOrder", defaultSortOrder))
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = defaultSortOrder
	}

	return ListParams{
		Page:      page,
		Limit:     limit,
		SortBy:    sortBy,
		SortOrder: sortOrder,
	}
}

// BoolFlag parses an optional "true"/"false" query parameter; nil when absent.
func BoolFlag(c *gin.Context, name string) *bool {
	raw, exists := c.GetQuery(name)
	if !exists || raw == "" {
		return nil
	}
	value := raw == "true"
	return &value
}

// ActiveFlag interprets the shared "active" parameter: defaults to active-only,
// "all" disables the filter, anything else filters on the literal value.
func ActiveFlag(c *gin.Context) *bool {
	raw := c.DefaultQuery("active", "true")
	if raw == "all" {
		return nil
	}
	value := raw == "true"
	return &value
}

// JSONArrayContains matches rows whose JSON-serialized string array column
// holds the given value. Works on the stored text representation, so it is
// portable across postgres and sqlite.
func JSONArrayContains(db *gorm.DB, column, value string) *gorm.DB {
	return db.Where(fmt.Sprintf("%s LIKE ?", column), "%\""+value+"\"%")
}

// ApplySort applies sorting to a GORM query, restricted to allowed fields
func ApplySort(db *gorm.DB, params ListParams, allowedSortFields map[string]string, fallback string) *gorm.DB {
	if dbField, allowed := allowedSortFields[params.SortBy]; allowed {
		return db.Order(fmt.Sprintf("%s %s", dbField, strings.ToUpper(params.SortOrder)))
	}
	return db.Order(fallback)
}

// ApplyPagination applies skip/limit to a GORM query; a no-op when unpaged
func ApplyPagination(db *gorm.DB, params ListParams) *gorm.DB {
	if params.Limit <= 0 {
		return db
	}
	offset := (params.Page - 1) * params.Limit
	return db.Offset(offset).Limit(params.Limit)
}

// BuildPagination creates pagination metadata for a paged list response
func BuildPagination(params ListParams, total int64) *Pagination {
	if params.Limit <= 0 {
		return nil
	}

	totalPages := (total + int64(params.Limit) - 1) / int64(params.Limit)
	skip := int64(params.Page-1) * int64(params.Limit)

	return &Pagination{
		Current: params.Page,
		Total:   totalPages,
		Count:   total,
		HasNext: skip+int64(params.Limit) < total,
		HasPrev: params.Page > 1,
	}
}
