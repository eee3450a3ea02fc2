// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the user-facing identity data owned by exactly one Account.
// It never stores credentials.
type Profile struct {
	ID          uuid.UUID  // The unique identifier of the profile.
	AccountID   uuid.UUID  // Links this profile to the Account it belongs to. Exactly one profile per account.
	FullName    string     // The user's display name.
	AvatarURL   string     // URL of the user's avatar image. Empty when the user has not chosen one.
	DateOfBirth *time.Time // The user's date of birth. Optional.
	Role        Role       // The user's role on the platform. Defaults to "student".
	WorkspaceID *uuid.UUID // Reference to the workspace the user belongs to. Optional, managed outside this core.
	Star        int        // Gamification counter.
	Diamond     int        // Gamification counter.
	CreatedAt   time.Time  // Timestamp of when this profile was created.
	UpdatedAt   time.Time  // Timestamp of the last modification to this profile.
}

// CredentialIdentity is the summary returned by a successful credential check.
// It carries just enough identity for the caller to build a token payload.
type CredentialIdentity struct {
	ProfileID uuid.UUID
	AccountID uuid.UUID
	Email     string
	FullName  string
	Role      Role
}
