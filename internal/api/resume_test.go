package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeListEmpty(t *testing.T) {
	env := setupTestEnv(t)
	token := env.registerUser(t, "Alex", "alex@example.com", "password123")

	w := env.perform(t, http.MethodGet, "/api/v1/resumes", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resumes []struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &resumes)
	assert.Empty(t, resumes)
}

func TestResumeDownloadUnknown(t *testing.T) {
	env := setupTestEnv(t)
	token := env.registerUser(t, "Alex", "alex@example.com", "password123")

	w := env.perform(t, http.MethodGet, "/api/v1/resumes/"+uuid.NewString()+"/download", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

	w = env.perform(t, http.MethodGet, "/api/v1/resumes/not-a-uuid/download", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}
