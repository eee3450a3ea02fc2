package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"ezstudy/internal/domain/entity"
	domainerrors "ezstudy/internal/domain/errors"
	"ezstudy/internal/domain/repository"
	mockRepo "ezstudy/internal/mocks/repository"
	"ezstudy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProfileService(t *testing.T) (usecase.ProfileUsecase, *mockRepo.MockProfileRepository) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProfileService(ProfileServiceParams{
		ProfileRepo: profileRepo,
		Logger:      logger,
	})

	return service, profileRepo
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	service, profileRepo := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	profile := &entity.Profile{
		ID:        uuid.New(),
		AccountID: accountID,
		FullName:  "Test Student",
		Role:      entity.RoleStudent,
	}

	profileRepo.EXPECT().FindByAccountID(ctx, accountID).Return(profile, nil)

	got, err := service.GetProfile(ctx, accountID)

	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	service, profileRepo := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()

	profileRepo.EXPECT().
		FindByAccountID(ctx, accountID).
		Return(nil, repository.ErrProfileNotFound)

	_, err := service.GetProfile(ctx, accountID)

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_UpdateProfile_PartialUpdate(t *testing.T) {
	service, profileRepo := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	dob := time.Date(2008, time.March, 14, 0, 0, 0, 0, time.UTC)
	profile := &entity.Profile{
		ID:          uuid.New(),
		AccountID:   accountID,
		FullName:    "Old Name",
		AvatarURL:   "https://example.com/old.png",
		DateOfBirth: &dob,
		Role:        entity.RoleStudent,
	}

	newName := "New Name"
	input := usecase.UpdateProfileInput{FullName: &newName}

	profileRepo.EXPECT().FindByAccountID(ctx, accountID).Return(profile, nil)
	profileRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(ctx context.Context, updated *entity.Profile) {
			assert.Equal(t, newName, updated.FullName)
			// Untouched fields keep their values.
			assert.Equal(t, "https://example.com/old.png", updated.AvatarURL)
			assert.Equal(t, &dob, updated.DateOfBirth)
		}).
		Return(nil)

	updated, err := service.UpdateProfile(ctx, accountID, input)

	require.NoError(t, err)
	assert.Equal(t, newName, updated.FullName)
}

func TestProfileService_UpdateProfile_NotFound(t *testing.T) {
	service, profileRepo := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	name := "New Name"

	profileRepo.EXPECT().
		FindByAccountID(ctx, accountID).
		Return(nil, repository.ErrProfileNotFound)

	_, err := service.UpdateProfile(ctx, accountID, usecase.UpdateProfileInput{FullName: &name})

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}
