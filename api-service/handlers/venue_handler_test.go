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

func venueRouter() *gin.Engine {
	router := gin.New()
	router.GET("/api/venues", GetVenues)
	router.GET("/api/venues/categories", GetVenueCategories)
	router.GET("/api/venues/slug/:slug", GetVenueBySlug)
	router.GET("/api/venues/:id", GetVenue)
	router.PUT("/api/venues/:id/reorder", ReorderVenue)
	router.POST("/api/venues", CreateVenue)
	router.PUT("/api/venues/:id", UpdateVenue)
	router.DELETE("/api/venues/:id", DeleteVenue)
	return router
}

func venuePayload(name string) gin.H {
	return gin.H{
		"name":        name,
		"description": "A restored 1920s ballroom with original chandeliers.",
		"location":    "Downtown Columbus",
		"capacity":    gin.H{"seated": 180, "standing": 250, "displayText": "Up to 250 guests"},
		"style":       []string{"classic", "elegant"},
		"priceRange":  "$$$",
	}
}

func createVenue(t *testing.T, router *gin.Engine, payload gin.H) map[string]interface{} {
	t.Helper()
	w := doRequest(router, jsonRequest(t, "POST", "/api/venues", payload))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return dataOf(t, w)
}

func TestCreateVenueGeneratesSlug(t *testing.T) {
	setupTestDB(t)
	router := venueRouter()

	data := createVenue(t, router, venuePayload("The Grand Ballroom"))
	assert.Equal(t, "the-grand-ballroom", data["slug"])
	assert.Equal(t, "Partner", data["category"])
	assert.Equal(t, true, data["isActive"])

	spaces := data["spaces"].(map[string]interface{})
	assert.Equal(t, true, spaces["hasIndoorSpace"])
	assert.Equal(t, false, spaces["hasOutdoorSpace"])
}

func TestCreateVenueDuplicateSlug(t *testing.T) {
	setupTestDB(t)
	router := venueRouter()

	createVenue(t, router, venuePayload("The Grand Ballroom"))

	w := doRequest(router, jsonRequest(t, "POST", "/api/venues", venuePayload("The Grand Ballroom")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestCreateVenueValidation(t *testing.T) {
	setupTestDB(t)
	router := venueRouter()

	payload := venuePayload("Broken Venue")
	payload["style"] = []string{}
	payload["priceRange"] = "$$$$$"
	w := doRequest(router, jsonRequest(t, "POST", "/api/venues", payload))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "style")
	assert.Contains(t, w.Body.String(), "priceRange")
}

func TestCreateVenueDropsImagesWithoutURL(t *testing.T) {
	setupTestDB(t)
	router := venueRouter()

	payload := venuePayload("Gallery Hall")
	payload["images"] = []gin.H{
		{"url": "https://cdn.example.com/hall.jpg", "alt": "Main hall"},
		{"url": "", "alt": "Broken upload"},
	}
	data := createVenue(t, router, payload)

	images := data["images"].([]interface{})
	require.Len(t, images, 1)
	assert.Equal(t, "https://cdn.example.com/hall.jpg", images[0].(map[string]interface{})["url"])
}

func TestGetVenuesFilters(t *testing.T) {
	setupTestDB(t)
	router := venueRouter()

	createVenue(t, router, venuePayload("Small Loft"))

	big := venuePayload("Estate Gardens")
	big["capacity"] = gin.H{"seated": 400, "standing": 600}
	big["category"] = "Exclusive"
	big["spaces"] = gin.H{"hasOutdoorSpace": true, "hasIndoorSpace": true}
	createVenue(t, router, big)

	inactive := venuePayload("Closed Hall")
	inactive["isActive"] = false
	createVenue(t, router, inactive)

	// active-only by default
	w := doRequest(router, jsonRequest(t, "GET", "/api/venues", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, itemsOf(t, w), 2)

	w = doRequest(router, jsonRequest(t, "GET", "/api/venues?active=all", nil))
	assert.Len(t, itemsOf(t, w), 3)

	w = doRequest(router, jsonRequest(t, "GET", "/api/venues?minCapacity=300", nil))
	items := itemsOf(t, w)
	require.Len(t, items, 1)
	assert.Equal(t, "Estate Gardens", items[0].(map[string]interface{})["name"])

	w = doRequest(router, jsonRequest(t, "GET", "/api/venues?category=Exclusive", nil))
	assert.Len(t, itemsOf(t, w), 1)

	w = doRequest(router, jsonRequest(t, "GET", "/api/venues?hasOutdoorSpace=true", nil))
	assert.Len(t, itemsOf(t, w), 1)

	w = doRequest(router, jsonRequest(t, "GET", "/api/venues?style=classic", nil))
	assert.Len(t, itemsOf(t, w), 2)
}

func TestGetVenueBySlugActiveOnly(t *testing.T) {
	setupTestDB(t)
	router := venueRouter()

	createVenue(t, router, venuePayload("Garden Terrace"))

	inactive := venuePayload("Hidden Venue")
	inactive["isActive"] = false
	createVenue(t, router, inactive)

	w := doRequest(router, jsonRequest(t, "GET", "/api/venues/slug/garden-terrace", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Garden Terrace", dataOf(t, w)["name"])

	w = doRequest(router, jsonRequest(t, "GET", "/api/venues/slug/hidden-venue", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVenueCategories(t *testing.T) {
	setupTestDB(t)
	router := venueRouter()

	createVenue(t, router, venuePayload("Partner One"))
	createVenue(t, router, venuePayload("Partner Two"))

	exclusive := venuePayload("Exclusive One")
	exclusive["category"] = "Exclusive"
	createVenue(t, router, exclusive)

	w := doRequest(router, jsonRequest(t, "GET", "/api/venues/categories", nil))
	require.Equal(t, http.StatusOK, w.Code)

	data := dataOf(t, w)
	categories := data["categories"].([]interface{})
	require.Len(t, categories, 2)

	first := categories[0].(map[string]interface{})
	assert.Equal(t, "Exclusive", first["category"])
	assert.Equal(t, float64(1), first["count"])

	locations := data["locations"].(map[string]interface{})
	assert.Equal(t, float64(3), locations["Downtown Columbus"])
}

func TestGetVenueByID(t *testing.T) {
	setupTestDB(t)
	router := venueRouter()

	data := createVenue(t, router, venuePayload("Garden Terrace"))
	id := data["id"].(string)

	w := doRequest(router, jsonRequest(t, "GET", "/api/venues/"+id, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Garden Terrace", dataOf(t, w)["name"])

	w = doRequest(router, jsonRequest(t, "GET", "/api/venues/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReorderVenue(t *testing.T) {
	setupTestDB(t)
	router := venueRouter()

	data := createVenue(t, router, venuePayload("Garden Terrace"))
	id := data["id"].(string)

	w := doRequest(router, jsonRequest(t, "PUT", "/api/venues/"+id+"/reorder", gin.H{"displayOrder": 7}))
	require.Equal(t, http.StatusOK, w.Code)

	var venue models.Venue
	require.NoError(t, database.DB.First(&venue, "id = ?", id).Error)
	assert.Equal(t, 7, venue.DisplayOrder)

	w = doRequest(router, jsonRequest(t, "PUT", "/api/venues/"+id+"/reorder", gin.H{"displayOrder": -1}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateVenue(t *testing.T) {
	setupTestDB(t)
	router := venueRouter()

	data := createVenue(t, router, venuePayload("The Grand Ballroom"))
	id := data["id"].(string)

	updated := venuePayload("The Grand Ballroom")
	updated["description"] = "Reimagined ballroom with a new mezzanine level."
	updated["isFeatured"] = true
	w := doRequest(router, jsonRequest(t, "PUT", "/api/venues/"+id, updated))

	require.Equal(t, http.StatusOK, w.Code)

	var venue models.Venue
	require.NoError(t, database.DB.First(&venue, "id = ?", id).Error)
	assert.Equal(t, "Reimagined ballroom with a new mezzanine level.", venue.Description)
	assert.True(t, venue.IsFeatured)
	assert.Equal(t, "the-grand-ballroom", venue.Slug)
}

func TestUpdateVenueSlugConflict(t *testing.T) {
	setupTestDB(t)
	router := venueRouter()

	createVenue(t, router, venuePayload("First Venue"))
	second := createVenue(t, router, venuePayload("Second Venue"))
	id := second["id"].(string)

	payload := venuePayload("Second Venue")
	payload["slug"] = "first-venue"
	w := doRequest(router, jsonRequest(t, "PUT", "/api/venues/"+id, payload))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestDeleteVenue(t *testing.T) {
	setupTestDB(t)
	router := venueRouter()

	data := createVenue(t, router, venuePayload("Doomed Venue"))
	id := data["id"].(string)

	w := doRequest(router, jsonRequest(t, "DELETE", "/api/venues/"+id, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	database.DB.Model(&models.Venue{}).Count(&count)
	assert.Zero(t, count)

	w = doRequest(router, jsonRequest(t, "DELETE", "/api/venues/"+id, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
