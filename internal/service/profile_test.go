package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aniketphatak/jobbot/backend/internal/models"
	"github.com/aniketphatak/jobbot/backend/internal/types"
)

func registerTestUser(t *testing.T, svc *AuthService) *models.User {
	t.Helper()
	user, _, err := svc.Register(context.Background(), "Alex Johnson", "alex@example.com", "password123")
	require.NoError(t, err)
	return user
}

func TestGetProfileNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db)

	_, err := svc.GetProfile(context.Background(), uuid.New())
	assert.True(t, IsNotFound(err))
}

func TestUpdateProfileMergesTopLevelFields(t *testing.T) {
	db := setupTestDB(t)
	profiles := NewProfileService(db)
	ctx := context.Background()

	user := registerTestUser(t, NewAuthService(db, "test-secret"))

	skills := []string{"Strategy", "SQL"}
	updated, err := profiles.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{
		Skills: &skills,
		Experience: &models.ExperienceList{
			{Title: "Senior PM", Company: "TechCorp", StartDate: "2022-03", EndDate: "present"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, models.JSONBStringArray{"Strategy", "SQL"}, updated.Skills)
	require.Len(t, updated.Experience, 1)
	// Fields absent from the request keep what registration wrote.
	assert.Equal(t, "Alex Johnson", updated.PersonalInfo.FullName)
	assert.Equal(t, models.DefaultWorkArrangement, updated.Preferences.WorkArrangement)
}

func TestUpdateProfileReplacesNestedDocuments(t *testing.T) {
	db := setupTestDB(t)
	profiles := NewProfileService(db)
	ctx := context.Background()

	user := registerTestUser(t, NewAuthService(db, "test-secret"))

	_, err := profiles.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{
		Experience: &models.ExperienceList{
			{Title: "PM", Company: "StartupXYZ"},
			{Title: "APM", Company: "BigCo"},
		},
	})
	require.NoError(t, err)

	// A later update replaces the whole list, not individual entries.
	updated, err := profiles.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{
		Experience: &models.ExperienceList{
			{Title: "Senior PM", Company: "TechCorp"},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.Experience, 1)
	assert.Equal(t, "TechCorp", updated.Experience[0].Company)
}

func TestUpdateProfileDefaultsWorkArrangement(t *testing.T) {
	db := setupTestDB(t)
	profiles := NewProfileService(db)
	ctx := context.Background()

	user := registerTestUser(t, NewAuthService(db, "test-secret"))

	minSalary := 150000
	updated, err := profiles.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{
		Preferences: &models.UserPreferences{MinSalary: &minSalary},
	})
	require.NoError(t, err)

	assert.Equal(t, models.DefaultWorkArrangement, updated.Preferences.WorkArrangement)
	require.NotNil(t, updated.Preferences.MinSalary)
	assert.Equal(t, 150000, *updated.Preferences.MinSalary)

	remote := models.UserPreferences{WorkArrangement: "remote"}
	updated, err = profiles.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{Preferences: &remote})
	require.NoError(t, err)
	assert.Equal(t, "remote", updated.Preferences.WorkArrangement)
}

func TestProfileRoundTripsThroughDatabase(t *testing.T) {
	db := setupTestDB(t)
	profiles := NewProfileService(db)
	ctx := context.Background()

	user := registerTestUser(t, NewAuthService(db, "test-secret"))

	_, err := profiles.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{
		Education: &models.EducationList{
			{Degree: "MBA", School: "Stanford", GraduationYear: "2020"},
		},
	})
	require.NoError(t, err)

	got, err := profiles.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, got.Education, 1)
	assert.Equal(t, "Stanford", got.Education[0].School)
}
