package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAIModelsEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	token := env.registerUser(t, "Alex", "alex@example.com", "password123")

	w := env.perform(t, http.MethodGet, "/api/v1/ai/models", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Providers []struct {
			Provider    string   `json:"provider"`
			Models      []string `json:"models"`
			Recommended string   `json:"recommended"`
		} `json:"providers"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Providers, 2)
	assert.Equal(t, "openai", resp.Providers[0].Provider)
	assert.Equal(t, "anthropic", resp.Providers[1].Provider)
	assert.NotEmpty(t, resp.Providers[0].Models)
}

func TestAIPreferenceEndpoints(t *testing.T) {
	env := setupTestEnv(t)
	token := env.registerUser(t, "Alex", "alex@example.com", "password123")

	// Defaults before anything is saved
	w := env.perform(t, http.MethodGet, "/api/v1/ai/preferences", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var pref struct {
		Provider string `json:"provider"`
		Model    string `json:"model"`
	}
	decodeBody(t, w, &pref)
	assert.Equal(t, "openai", pref.Provider)
	assert.Equal(t, "gpt-4o", pref.Model)

	w = env.perform(t, http.MethodPost, "/api/v1/ai/preferences", token, gin.H{
		"provider": "anthropic",
		"model":    "claude-sonnet-4-20250514",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.perform(t, http.MethodGet, "/api/v1/ai/preferences", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &pref)
	assert.Equal(t, "anthropic", pref.Provider)
}

func TestAIPreferenceRejectsUnknownProvider(t *testing.T) {
	env := setupTestEnv(t)
	token := env.registerUser(t, "Alex", "alex@example.com", "password123")

	w := env.perform(t, http.MethodPost, "/api/v1/ai/preferences", token, gin.H{
		"provider": "gemini",
		"model":    "gemini-pro",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateCoverLetterEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	token := env.registerUser(t, "Alex", "alex@example.com", "password123")
	campaign := createCampaign(t, env, token, "Search")
	job := createJob(t, env, token, campaign.ID, "Senior PM", "Meta", time.Now().UTC())

	w := env.perform(t, http.MethodPost, "/api/v1/ai/generate-cover-letter", token, gin.H{
		"job_id": job.ID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		CoverLetter string `json:"cover_letter"`
		Provider    string `json:"provider"`
		Model       string `json:"model"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "generated content", resp.CoverLetter)
	assert.Equal(t, "openai", resp.Provider)
	assert.Equal(t, "gpt-4o", resp.Model)
}

func TestGenerateMissingJob(t *testing.T) {
	env := setupTestEnv(t)
	token := env.registerUser(t, "Alex", "alex@example.com", "password123")

	w := env.perform(t, http.MethodPost, "/api/v1/ai/generate-cover-letter", token, gin.H{
		"job_id": uuid.NewString(),
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.perform(t, http.MethodPost, "/api/v1/ai/generate-resume-summary", token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAIHistoryEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	token := env.registerUser(t, "Alex", "alex@example.com", "password123")
	campaign := createCampaign(t, env, token, "Search")
	job := createJob(t, env, token, campaign.ID, "Senior PM", "Meta", time.Now().UTC())

	w := env.perform(t, http.MethodPost, "/api/v1/ai/generate-linkedin-message", token, gin.H{
		"job_id": job.ID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.perform(t, http.MethodGet, "/api/v1/ai/history", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var history map[string][]struct {
		Content string `json:"content"`
	}
	decodeBody(t, w, &history)
	assert.Len(t, history["linkedin_message"], 1)
	// The other kinds are present as empty lists
	require.Contains(t, history, "cover_letter")
	require.Contains(t, history, "resume_summary")
	assert.Empty(t, history["cover_letter"])
}

func TestAIRateLimitEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	token := env.registerUser(t, "Alex", "alex@example.com", "password123")

	w := env.perform(t, http.MethodGet, "/api/v1/ai/rate-limit", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Limit     int   `json:"limit"`
		Remaining int   `json:"remaining"`
		ResetAt   int64 `json:"reset_at"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, 20, resp.Limit)
	assert.Equal(t, 20, resp.Remaining)
	assert.Greater(t, resp.ResetAt, int64(0))
}
