package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aniketphatak/jobbot/backend/internal/models"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "Alex Johnson", "alex@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Alex Johnson", user.Name)
	assert.NotEqual(t, "password123", user.PasswordHash)

	// Registration also creates an empty profile with the default preference.
	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, "Alex Johnson", profile.PersonalInfo.FullName)
	assert.Equal(t, models.DefaultWorkArrangement, profile.Preferences.WorkArrangement)

	loggedIn, loginToken, err := svc.Login(ctx, "alex@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, loginToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Alex", "alex@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "Other Alex", "alex@example.com", "different")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Alex", "alex@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alex@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "Alex", "alex@example.com", "password123")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alex@example.com", claims.Email)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	_, token, err := NewAuthService(db, "secret-a").Register(ctx, "Alex", "alex@example.com", "password123")
	require.NoError(t, err)

	_, err = NewAuthService(db, "secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewAuthService(setupTestDB(t), "test-secret")

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
