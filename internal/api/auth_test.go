package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEndpoint(t *testing.T) {
	env := setupTestEnv(t)

	w := env.perform(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     "Alex Johnson",
		"email":    "alex@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	decodeBody(t, w, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Alex Johnson", resp.User.Name)
	assert.Equal(t, "alex@example.com", resp.User.Email)
}

func TestRegisterDuplicateEmailEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "Alex", "alex@example.com", "password123")

	w := env.perform(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     "Other",
		"email":    "alex@example.com",
		"password": "different1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterInvalidBody(t *testing.T) {
	env := setupTestEnv(t)

	w := env.perform(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name": "No Credentials",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "Alex", "alex@example.com", "password123")

	w := env.perform(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "alex@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &resp)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginWrongCredentials(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "Alex", "alex@example.com", "password123")

	w := env.perform(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "alex@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := setupTestEnv(t)

	w := env.perform(t, http.MethodGet, "/api/v1/campaigns", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.perform(t, http.MethodGet, "/api/v1/campaigns", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
