package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marigold-backend/shared/database"
	"marigold-backend/shared/database/models"
)

func careerRouter() *gin.Engine {
	router := gin.New()
	router.POST("/api/careers", CreateCareerApplication)
	router.GET("/api/careers", GetCareerApplications)
	router.GET("/api/careers/stats", GetCareerStats)
	router.GET("/api/careers/:id", GetCareerApplication)
	router.PUT("/api/careers/:id", UpdateCareerApplication)
	router.POST("/api/careers/:id/archive", ArchiveCareerApplication)
	router.DELETE("/api/careers/:id", DeleteCareerApplication)
	return router
}

func validApplicationPayload() gin.H {
	return gin.H{
		"name":   "Sam Cook",
		"email":  "sam@example.com",
		"phone":  "555-987-6543",
		"role":   "Sous Chef",
		"resume": gin.H{
			"url":          "https://files.example.com/resume.pdf",
			"originalName": "resume.pdf",
			"fileType":     "application/pdf",
			"fileSize":     482133,
			"key":          "abc123",
		},
	}
}

func TestCreateCareerApplication(t *testing.T) {
	setupTestDB(t)
	router := careerRouter()

	w := doRequest(router, jsonRequest(t, "POST", "/api/careers", validApplicationPayload()))

	require.Equal(t, http.StatusCreated, w.Code)

	// the acknowledgement carries identity fields only
	data := dataOf(t, w)
	assert.Equal(t, "Sam Cook", data["name"])
	assert.Equal(t, "new", data["status"])
	assert.NotContains(t, data, "ipAddress")
	assert.NotContains(t, data, "resume")

	var app models.CareerApplication
	require.NoError(t, database.DB.First(&app).Error)
	assert.Equal(t, models.ApplicationStatusNew, app.Status)
	assert.Equal(t, "website", app.Source)
	assert.Equal(t, "resume.pdf", app.Resume.OriginalName)
	assert.False(t, app.IsArchived)
	assert.Nil(t, app.ReviewedAt)
}

func TestCreateCareerApplicationRequiresResume(t *testing.T) {
	setupTestDB(t)
	router := careerRouter()

	payload := validApplicationPayload()
	delete(payload, "resume")
	w := doRequest(router, jsonRequest(t, "POST", "/api/careers", payload))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCareerApplicationRequiresResumeKey(t *testing.T) {
	setupTestDB(t)
	router := careerRouter()

	payload := validApplicationPayload()
	delete(payload["resume"].(gin.H), "key")
	w := doRequest(router, jsonRequest(t, "POST", "/api/careers", payload))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "key")
}

func TestUpdateCareerApplicationWhitelist(t *testing.T) {
	setupTestDB(t)
	router := careerRouter()

	w := doRequest(router, jsonRequest(t, "POST", "/api/careers", validApplicationPayload()))
	require.Equal(t, http.StatusCreated, w.Code)

	var app models.CareerApplication
	require.NoError(t, database.DB.First(&app).Error)

	// name and email ride along but only the whitelisted fields change
	w = doRequest(router, jsonRequest(t, "PUT", "/api/careers/"+app.ID.String(), gin.H{
		"name":       "Hijacked Name",
		"email":      "hijacked@example.com",
		"status":     "reviewing",
		"reviewedBy": "Pat",
		"rating":     4,
		"tags":       []string{"strong-candidate"},
	}))
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, database.DB.First(&app, "id = ?", app.ID).Error)
	assert.Equal(t, "Sam Cook", app.Name)
	assert.Equal(t, "sam@example.com", app.Email)
	assert.Equal(t, models.ApplicationStatusReviewing, app.Status)
	assert.Equal(t, "Pat", app.ReviewedBy)
	require.NotNil(t, app.Rating)
	assert.Equal(t, 4, *app.Rating)
	assert.Equal(t, []string{"strong-candidate"}, app.Tags)
}

func TestUpdateCareerApplicationStampsReviewedAt(t *testing.T) {
	setupTestDB(t)
	router := careerRouter()

	w := doRequest(router, jsonRequest(t, "POST", "/api/careers", validApplicationPayload()))
	require.Equal(t, http.StatusCreated, w.Code)

	var app models.CareerApplication
	require.NoError(t, database.DB.First(&app).Error)
	require.Nil(t, app.ReviewedAt)

	w = doRequest(router, jsonRequest(t, "PUT", "/api/careers/"+app.ID.String(), gin.H{
		"status": "reviewing",
	}))
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, database.DB.First(&app, "id = ?", app.ID).Error)
	require.NotNil(t, app.ReviewedAt)

	first := *app.ReviewedAt
	w = doRequest(router, jsonRequest(t, "PUT", "/api/careers/"+app.ID.String(), gin.H{
		"status": "interview",
	}))
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, database.DB.First(&app, "id = ?", app.ID).Error)
	require.NotNil(t, app.ReviewedAt)
	assert.Equal(t, first.Unix(), app.ReviewedAt.Unix())
}

func TestUpdateCareerApplicationRejectsBadRating(t *testing.T) {
	setupTestDB(t)
	router := careerRouter()

	w := doRequest(router, jsonRequest(t, "POST", "/api/careers", validApplicationPayload()))
	require.Equal(t, http.StatusCreated, w.Code)

	var app models.CareerApplication
	require.NoError(t, database.DB.First(&app).Error)

	w = doRequest(router, jsonRequest(t, "PUT", "/api/careers/"+app.ID.String(), gin.H{
		"rating": 11,
	}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestArchiveHidesApplicationFromDefaultList(t *testing.T) {
	setupTestDB(t)
	router := careerRouter()

	w := doRequest(router, jsonRequest(t, "POST", "/api/careers", validApplicationPayload()))
	require.Equal(t, http.StatusCreated, w.Code)

	var app models.CareerApplication
	require.NoError(t, database.DB.First(&app).Error)

	w = doRequest(router, jsonRequest(t, "POST", "/api/careers/"+app.ID.String()+"/archive", nil))
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, database.DB.First(&app, "id = ?", app.ID).Error)
	assert.True(t, app.IsArchived)
	assert.Equal(t, models.ApplicationStatusArchived, app.Status)

	w = doRequest(router, jsonRequest(t, "GET", "/api/careers", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, itemsOf(t, w), 0)

	w = doRequest(router, jsonRequest(t, "GET", "/api/careers?archived=true", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, itemsOf(t, w), 1)

	w = doRequest(router, jsonRequest(t, "GET", "/api/careers?archived=all", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, itemsOf(t, w), 1)
}

func TestCareerStats(t *testing.T) {
	setupTestDB(t)
	router := careerRouter()

	for _, role := range []string{"Sous Chef", "Sous Chef", "Server"} {
		payload := validApplicationPayload()
		payload["role"] = role
		w := doRequest(router, jsonRequest(t, "POST", "/api/careers", payload))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(router, jsonRequest(t, "GET", "/api/careers/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)

	data := dataOf(t, w)
	assert.Equal(t, float64(3), data["total"])
	assert.Equal(t, float64(3), data["recentCount"])

	byStatus := data["byStatus"].(map[string]interface{})
	assert.Equal(t, float64(3), byStatus["new"])

	topRoles := data["topRoles"].([]interface{})
	require.NotEmpty(t, topRoles)
	first := topRoles[0].(map[string]interface{})
	assert.Equal(t, "Sous Chef", first["role"])
	assert.Equal(t, float64(2), first["count"])
}
