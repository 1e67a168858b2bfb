package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corporateRouter() *gin.Engine {
	router := gin.New()
	router.GET("/api/corporate-services", GetCorporateServices)
	router.GET("/api/corporate-services/:id", GetCorporateService)
	router.POST("/api/corporate-services", CreateCorporateService)
	router.PUT("/api/corporate-services/:id", UpdateCorporateService)
	router.DELETE("/api/corporate-services/:id", DeleteCorporateService)
	return router
}

func corporatePayload(title string) gin.H {
	return gin.H{
		"title":       title,
		"description": "Recurring weekday lunch programs for offices downtown.",
	}
}

func TestCreateCorporateServiceDefaults(t *testing.T) {
	setupTestDB(t)
	router := corporateRouter()

	w := doRequest(router, jsonRequest(t, "POST", "/api/corporate-services", corporatePayload("Office Lunch Program")))
	require.Equal(t, http.StatusCreated, w.Code)

	data := dataOf(t, w)
	assert.Equal(t, "Learn More", data["ctaText"])
	assert.Equal(t, "/contact", data["ctaLink"])
	assert.Equal(t, "corporate", data["serviceType"])
	assert.Equal(t, true, data["isActive"])
}

func TestCreateCorporateServiceAcceptsAllServiceType(t *testing.T) {
	setupTestDB(t)
	router := corporateRouter()

	payload := corporatePayload("Cross-Audience Card")
	payload["serviceType"] = "all"
	w := doRequest(router, jsonRequest(t, "POST", "/api/corporate-services", payload))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "all", dataOf(t, w)["serviceType"])
}

func TestGetCorporateServicesDisplayOrder(t *testing.T) {
	setupTestDB(t)
	router := corporateRouter()

	second := corporatePayload("Second Card")
	second["displayOrder"] = 2
	w := doRequest(router, jsonRequest(t, "POST", "/api/corporate-services", second))
	require.Equal(t, http.StatusCreated, w.Code)

	first := corporatePayload("First Card")
	first["displayOrder"] = 1
	w = doRequest(router, jsonRequest(t, "POST", "/api/corporate-services", first))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, jsonRequest(t, "GET", "/api/corporate-services", nil))
	require.Equal(t, http.StatusOK, w.Code)

	items := itemsOf(t, w)
	require.Len(t, items, 2)
	assert.Equal(t, "First Card", items[0].(map[string]interface{})["title"])
	assert.Equal(t, "Second Card", items[1].(map[string]interface{})["title"])
}

func TestUpdateCorporateServiceRequiresDescription(t *testing.T) {
	setupTestDB(t)
	router := corporateRouter()

	w := doRequest(router, jsonRequest(t, "POST", "/api/corporate-services", corporatePayload("Office Lunch Program")))
	require.Equal(t, http.StatusCreated, w.Code)
	id := dataOf(t, w)["id"].(string)

	w = doRequest(router, jsonRequest(t, "PUT", "/api/corporate-services/"+id, gin.H{
		"title": "Office Lunch Program",
	}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "description")
}
