// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"ezstudy/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput defines the mutable profile fields. Nil fields are
// left unchanged.
type UpdateProfileInput struct {
	FullName    *string
	AvatarURL   *string
	DateOfBirth *time.Time
}

// ProfileUsecase defines profile read and update operations for the
// authenticated account.
type ProfileUsecase interface {
	// GetProfile returns the profile linked to an account.
	GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error)

	// UpdateProfile applies partial updates to the profile linked to an account.
	UpdateProfile(ctx context.Context, accountID uuid.UUID, input UpdateProfileInput) (*entity.Profile, error)
}
