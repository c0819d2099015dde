package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type campaignResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Status    string   `json:"status"`
	Keywords  []string `json:"keywords"`
	Companies []string `json:"companies"`
	Locations []string `json:"locations"`
}

func createCampaign(t *testing.T, env *testEnv, token, name string) campaignResponse {
	t.Helper()
	w := env.perform(t, http.MethodPost, "/api/v1/campaigns", token, gin.H{
		"name":      name,
		"keywords":  "Product Manager, Senior PM",
		"companies": "Google, Meta",
		"locations": "Remote",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp campaignResponse
	decodeBody(t, w, &resp)
	return resp
}

func TestCreateCampaignEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	token := env.registerUser(t, "Alex", "alex@example.com", "password123")

	campaign := createCampaign(t, env, token, "Senior PM Search")
	assert.Equal(t, "Senior PM Search", campaign.Name)
	assert.Equal(t, "active", campaign.Status)
	assert.Equal(t, []string{"Product Manager", "Senior PM"}, campaign.Keywords)
	assert.Equal(t, []string{"Google", "Meta"}, campaign.Companies)
}

func TestCreateCampaignRequiresName(t *testing.T) {
	env := setupTestEnv(t)
	token := env.registerUser(t, "Alex", "alex@example.com", "password123")

	w := env.perform(t, http.MethodPost, "/api/v1/campaigns", token, gin.H{"name": "  "})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Campaign name is required")
}

func TestToggleCampaignEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	token := env.registerUser(t, "Alex", "alex@example.com", "password123")
	campaign := createCampaign(t, env, token, "Search")

	w := env.perform(t, http.MethodPost, "/api/v1/campaigns/"+campaign.ID+"/toggle", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var toggled campaignResponse
	decodeBody(t, w, &toggled)
	assert.Equal(t, "paused", toggled.Status)

	// Paused campaigns drop out of the active list
	w = env.perform(t, http.MethodGet, "/api/v1/campaigns/active", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var active []campaignResponse
	decodeBody(t, w, &active)
	assert.Empty(t, active)
}

func TestCompletedCampaignCannotToggle(t *testing.T) {
	env := setupTestEnv(t)
	token := env.registerUser(t, "Alex", "alex@example.com", "password123")
	campaign := createCampaign(t, env, token, "Search")

	w := env.perform(t, http.MethodPut, "/api/v1/campaigns/"+campaign.ID, token, gin.H{
		"status": "completed",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.perform(t, http.MethodPost, "/api/v1/campaigns/"+campaign.ID+"/toggle", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCampaignNotFound(t *testing.T) {
	env := setupTestEnv(t)
	token := env.registerUser(t, "Alex", "alex@example.com", "password123")

	w := env.perform(t, http.MethodGet, "/api/v1/campaigns/"+uuid.NewString(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.perform(t, http.MethodGet, "/api/v1/campaigns/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteCampaignEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	token := env.registerUser(t, "Alex", "alex@example.com", "password123")
	campaign := createCampaign(t, env, token, "Short lived")

	w := env.perform(t, http.MethodDelete, "/api/v1/campaigns/"+campaign.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.perform(t, http.MethodDelete, "/api/v1/campaigns/"+campaign.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCampaigns(t *testing.T) {
	env := setupTestEnv(t)
	token := env.registerUser(t, "Alex", "alex@example.com", "password123")
	otherToken := env.registerUser(t, "Sam", "sam@example.com", "password123")

	createCampaign(t, env, token, "Mine one")
	createCampaign(t, env, token, "Mine two")
	createCampaign(t, env, otherToken, "Theirs")

	w := env.perform(t, http.MethodGet, "/api/v1/campaigns", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var campaigns []campaignResponse
	decodeBody(t, w, &campaigns)
	assert.Len(t, campaigns, 2)
}
