package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marigold-backend/api-service/middleware"
	"marigold-backend/shared/database"
	"marigold-backend/shared/database/models"
	utils "marigold-backend/shared/utils/auth"
)

func authRouter() *gin.Engine {
	router := gin.New()
	router.POST("/api/auth/login", Login)
	router.POST("/api/auth/verify", middleware.AuthMiddleware(), VerifyToken)
	return router
}

func seedAdmin(t *testing.T, username, password string) models.AdminUser {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := models.AdminUser{Username: username, Password: hash, Role: "admin"}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func TestLoginSuccess(t *testing.T) {
	setupTestDB(t)
	seedAdmin(t, "admin", "catering123")
	router := authRouter()

	w := doRequest(router, jsonRequest(t, "POST", "/api/auth/login", gin.H{
		"username": "admin",
		"password": "catering123",
	}))

	require.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	assert.NotEmpty(t, data["token"])

	user := data["user"].(map[string]interface{})
	assert.Equal(t, "admin", user["username"])
	assert.Equal(t, "admin", user["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	setupTestDB(t)
	seedAdmin(t, "admin", "catering123")
	router := authRouter()

	w := doRequest(router, jsonRequest(t, "POST", "/api/auth/login", gin.H{
		"username": "admin",
		"password": "wrong",
	}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLoginUnknownUser(t *testing.T) {
	setupTestDB(t)
	router := authRouter()

	w := doRequest(router, jsonRequest(t, "POST", "/api/auth/login", gin.H{
		"username": "ghost",
		"password": "whatever",
	}))

	// same message as a bad password so usernames cannot be probed
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLoginMissingFields(t *testing.T) {
	setupTestDB(t)
	router := authRouter()

	w := doRequest(router, jsonRequest(t, "POST", "/api/auth/login", gin.H{
		"username": "admin",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "password")
}

func TestVerifyTokenEchoesIdentity(t *testing.T) {
	setupTestDB(t)
	user := seedAdmin(t, "admin", "catering123")
	router := authRouter()

	token, err := utils.GenerateJWT(user.ID, user.Username, user.Role)
	require.NoError(t, err)

	req := jsonRequest(t, "POST", "/api/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := doRequest(router, req)

	require.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	identity := data["user"].(map[string]interface{})
	assert.Equal(t, "admin", identity["username"])
	assert.Equal(t, user.ID.String(), identity["id"])
}
