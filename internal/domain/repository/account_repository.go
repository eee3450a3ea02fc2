// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"ezstudy/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is
// not found among non-deleted rows.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// All lookups consider non-deleted rows only; Delete is a soft delete.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its case-normalized email.
	// The returned entity includes the password hash and stored refresh token.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByGoogleID retrieves a single account by its linked Google subject ID.
	FindByGoogleID(ctx context.Context, googleID string) (*entity.Account, error)

	// Create persists a new account entity to the storage.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account entity in the storage.
	Update(ctx context.Context, account *entity.Account) error

	// UpdateRefreshToken replaces the stored refresh token for an account.
	// An empty token clears the session (logout).
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, refreshToken string) error

	// UpdateLastLogin records the timestamp of a successful login.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	// UpdateStatus transitions an account between verification states.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus) error

	// Delete marks an account as deleted. Rows are never removed physically.
	Delete(ctx context.Context, id uuid.UUID) error
}
