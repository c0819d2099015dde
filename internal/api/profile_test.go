package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	token := env.registerUser(t, "Alex Johnson", "alex@example.com", "password123")

	w := env.perform(t, http.MethodGet, "/api/v1/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var profile struct {
		PersonalInfo struct {
			FullName string `json:"full_name"`
			Email    string `json:"email"`
		} `json:"personal_info"`
		Preferences struct {
			WorkArrangement string `json:"work_arrangement"`
		} `json:"preferences"`
	}
	decodeBody(t, w, &profile)
	assert.Equal(t, "Alex Johnson", profile.PersonalInfo.FullName)
	assert.Equal(t, "hybrid", profile.Preferences.WorkArrangement)
}

func TestUpdateProfileEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	token := env.registerUser(t, "Alex", "alex@example.com", "password123")

	w := env.perform(t, http.MethodPut, "/api/v1/profile", token, gin.H{
		"skills": []string{"Strategy", "SQL"},
		"experience": []gin.H{
			{"title": "Senior PM", "company": "TechCorp", "start_date": "2022-03", "end_date": "present"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var profile struct {
		Skills     []string `json:"skills"`
		Experience []struct {
			Company string `json:"company"`
		} `json:"experience"`
	}
	decodeBody(t, w, &profile)
	assert.Equal(t, []string{"Strategy", "SQL"}, profile.Skills)
	require.Len(t, profile.Experience, 1)
	assert.Equal(t, "TechCorp", profile.Experience[0].Company)
}
