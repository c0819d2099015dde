package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aniketphatak/jobbot/backend/internal/models"
	"github.com/aniketphatak/jobbot/backend/internal/testhelpers"
)

func TestDatabase(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	require.NotNil(t, db)

	user := models.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "hashedpassword",
	}

	require.NoError(t, db.Create(&user).Error)

	var loaded models.User
	require.NoError(t, db.First(&loaded, "id = ?", user.ID).Error)
	assert.Equal(t, "test@example.com", loaded.Email)
}
