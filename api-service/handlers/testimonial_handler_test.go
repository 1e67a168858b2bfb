package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testimonialRouter() *gin.Engine {
	router := gin.New()
	router.GET("/api/testimonials", GetTestimonials)
	router.GET("/api/testimonials/:id", GetTestimonial)
	router.POST("/api/testimonials", CreateTestimonial)
	router.PUT("/api/testimonials/:id", UpdateTestimonial)
	router.DELETE("/api/testimonials/:id", DeleteTestimonial)
	return router
}

func testimonialPayload(clientNames string) gin.H {
	return gin.H{
		"clientNames": clientNames,
		"content":     "The team made our event effortless from start to finish.",
	}
}

func createTestimonial(t *testing.T, router *gin.Engine, payload gin.H) map[string]interface{} {
	t.Helper()
	w := doRequest(router, jsonRequest(t, "POST", "/api/testimonials", payload))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return dataOf(t, w)
}

func TestCreateTestimonialDefaults(t *testing.T) {
	setupTestDB(t)
	router := testimonialRouter()

	data := createTestimonial(t, router, testimonialPayload("Emily & Jordan"))
	assert.Equal(t, float64(5), data["rating"])
	assert.Equal(t, "all", data["serviceType"])
	assert.Equal(t, true, data["isActive"])
}

func TestCreateTestimonialRejectsBadRating(t *testing.T) {
	setupTestDB(t)
	router := testimonialRouter()

	payload := testimonialPayload("Emily & Jordan")
	payload["rating"] = 6
	w := doRequest(router, jsonRequest(t, "POST", "/api/testimonials", payload))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTestimonialsServiceTypeIncludesAll(t *testing.T) {
	setupTestDB(t)
	router := testimonialRouter()

	wedding := testimonialPayload("Emily & Jordan")
	wedding["serviceType"] = "wedding"
	createTestimonial(t, router, wedding)

	corporate := testimonialPayload("Acme Corp")
	corporate["serviceType"] = "corporate"
	createTestimonial(t, router, corporate)

	catering := testimonialPayload("Riverside Gala")
	catering["serviceType"] = "catering"
	createTestimonial(t, router, catering)

	createTestimonial(t, router, testimonialPayload("A Happy Client"))

	w := doRequest(router, jsonRequest(t, "GET", "/api/testimonials?serviceType=wedding", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, itemsOf(t, w), 2)

	w = doRequest(router, jsonRequest(t, "GET", "/api/testimonials?serviceType=catering", nil))
	assert.Len(t, itemsOf(t, w), 2)

	w = doRequest(router, jsonRequest(t, "GET", "/api/testimonials", nil))
	assert.Len(t, itemsOf(t, w), 4)
}

func TestGetTestimonialsFeaturedSortFirst(t *testing.T) {
	setupTestDB(t)
	router := testimonialRouter()

	createTestimonial(t, router, testimonialPayload("Regular Client"))

	featured := testimonialPayload("Featured Client")
	featured["isFeatured"] = true
	createTestimonial(t, router, featured)

	w := doRequest(router, jsonRequest(t, "GET", "/api/testimonials", nil))
	items := itemsOf(t, w)
	require.Len(t, items, 2)
	assert.Equal(t, "Featured Client", items[0].(map[string]interface{})["clientNames"])
}

func TestUpdateTestimonialPartial(t *testing.T) {
	setupTestDB(t)
	router := testimonialRouter()

	data := createTestimonial(t, router, testimonialPayload("Emily & Jordan"))
	id := data["id"].(string)

	w := doRequest(router, jsonRequest(t, "PUT", "/api/testimonials/"+id, gin.H{
		"rating": 4,
	}))
	require.Equal(t, http.StatusOK, w.Code)

	result := dataOf(t, w)
	assert.Equal(t, float64(4), result["rating"])
	// untouched fields stay put
	assert.Equal(t, "Emily & Jordan", result["clientNames"])
}
