package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuItemRouter() *gin.Engine {
	router := gin.New()
	router.GET("/api/menu-items", GetMenuItems)
	router.GET("/api/menu-items/:id", GetMenuItem)
	router.POST("/api/menu-items", CreateMenuItem)
	router.PUT("/api/menu-items/:id", UpdateMenuItem)
	router.DELETE("/api/menu-items/:id", DeleteMenuItem)
	return router
}

func menuItemPayload(name, serviceType string) gin.H {
	payload := gin.H{
		"name":     name,
		"price":    24.5,
		"category": "lunch",
	}
	if serviceType != "" {
		payload["serviceType"] = serviceType
	}
	return payload
}

func createMenuItem(t *testing.T, router *gin.Engine, payload gin.H) map[string]interface{} {
	t.Helper()
	w := doRequest(router, jsonRequest(t, "POST", "/api/menu-items", payload))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return dataOf(t, w)
}

func TestCreateMenuItemDefaults(t *testing.T) {
	setupTestDB(t)
	router := menuItemRouter()

	data := createMenuItem(t, router, menuItemPayload("Braised Short Rib", ""))
	assert.Equal(t, "corporate", data["serviceType"])
	assert.Equal(t, "person", data["priceUnit"])
	assert.Equal(t, float64(1), data["minimumOrder"])
	assert.Equal(t, true, data["isActive"])
}

func TestCreateMenuItemAcceptsAllCategoriesAndUnits(t *testing.T) {
	setupTestDB(t)
	router := menuItemRouter()

	payload := menuItemPayload("Sunrise Platter", "catering")
	payload["category"] = "breakfast"
	payload["priceUnit"] = "platter"

	data := createMenuItem(t, router, payload)
	assert.Equal(t, "breakfast", data["category"])
	assert.Equal(t, "platter", data["priceUnit"])
	assert.Equal(t, "catering", data["serviceType"])
}

func TestCreateMenuItemRequiresPrice(t *testing.T) {
	setupTestDB(t)
	router := menuItemRouter()

	w := doRequest(router, jsonRequest(t, "POST", "/api/menu-items", gin.H{
		"name":     "Free Lunch",
		"category": "lunch",
	}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "price")
}

func TestGetMenuItemsServiceTypeIncludesAll(t *testing.T) {
	setupTestDB(t)
	router := menuItemRouter()

	createMenuItem(t, router, menuItemPayload("Boardroom Boxed Lunch", "corporate"))
	createMenuItem(t, router, menuItemPayload("Plated Salmon", "wedding"))
	createMenuItem(t, router, menuItemPayload("House Salad", "all"))

	// default service type is corporate; "all" items ride along
	w := doRequest(router, jsonRequest(t, "GET", "/api/menu-items", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, itemsOf(t, w), 2)

	w = doRequest(router, jsonRequest(t, "GET", "/api/menu-items?serviceType=wedding", nil))
	assert.Len(t, itemsOf(t, w), 2)

	w = doRequest(router, jsonRequest(t, "GET", "/api/menu-items?serviceType=all", nil))
	assert.Len(t, itemsOf(t, w), 3)
}

func TestGetMenuItemsCategoryFilter(t *testing.T) {
	setupTestDB(t)
	router := menuItemRouter()

	createMenuItem(t, router, menuItemPayload("Braised Short Rib", ""))
	dessert := menuItemPayload("Lemon Tart", "")
	dessert["category"] = "desserts"
	createMenuItem(t, router, dessert)

	w := doRequest(router, jsonRequest(t, "GET", "/api/menu-items?category=desserts", nil))
	items := itemsOf(t, w)
	require.Len(t, items, 1)
	assert.Equal(t, "Lemon Tart", items[0].(map[string]interface{})["name"])
}

func TestUpdateMenuItem(t *testing.T) {
	setupTestDB(t)
	router := menuItemRouter()

	data := createMenuItem(t, router, menuItemPayload("Braised Short Rib", ""))
	id := data["id"].(string)

	updated := menuItemPayload("Braised Short Rib", "")
	updated["price"] = 28.0
	updated["isFeatured"] = true
	w := doRequest(router, jsonRequest(t, "PUT", "/api/menu-items/"+id, updated))

	require.Equal(t, http.StatusOK, w.Code)
	result := dataOf(t, w)
	assert.Equal(t, float64(28), result["price"])
	assert.Equal(t, true, result["isFeatured"])
}

func TestDeleteMenuItemNotFound(t *testing.T) {
	setupTestDB(t)
	router := menuItemRouter()

	w := doRequest(router, jsonRequest(t, "DELETE", "/api/menu-items/0b7a3c8e-1f2d-4e5a-9b6c-222222222222", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
