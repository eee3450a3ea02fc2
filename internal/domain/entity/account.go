// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountStatus represents the verification state of an account.
type AccountStatus string

const (
	// AccountStatusActive marks an account whose email has been verified (or
	// that was created through a trusted identity provider).
	AccountStatusActive AccountStatus = "active"
	// AccountStatusInactive marks an account that has registered but not yet
	// verified its email address. Inactive accounts cannot log in.
	AccountStatusInactive AccountStatus = "inactive"
)

// String returns the string representation of the AccountStatus.
func (s AccountStatus) String() string {
	return string(s)
}

// IsValid checks if the AccountStatus is a valid value.
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusActive, AccountStatusInactive:
		return true
	default:
		return false
	}
}

// AuthProvider represents the method an account uses to authenticate.
type AuthProvider string

const (
	// ProviderLocal indicates email/password authentication.
	ProviderLocal AuthProvider = "local"
	// ProviderGoogle indicates Google Sign-In.
	ProviderGoogle AuthProvider = "google"
)

// String returns the string representation of the AuthProvider.
func (p AuthProvider) String() string {
	return string(p)
}

// Account is the authentication identity. It carries credentials and session
// state only; user-facing identity data lives on the linked Profile.
type Account struct {
	ID           uuid.UUID     // The unique identifier of the account.
	Email        string        // Unique login identifier, stored lower-cased and trimmed.
	PasswordHash string        // bcrypt hash of the password. Empty for Google-only accounts.
	Provider     AuthProvider  // How this account authenticates ("local" or "google").
	Status       AccountStatus // Verification state; only "active" accounts may log in with a password.
	GoogleID     string        // Google's 'sub' claim when the account is linked to Google. Empty otherwise.
	RefreshToken string        // The currently valid refresh token. Empty when logged out.
	LastLoginAt  *time.Time    // Timestamp of the most recent successful login. Nil before first login.
	CreatedAt    time.Time     // Timestamp of when this account was created.
	UpdatedAt    time.Time     // Timestamp of the last modification to this account.
	DeletedAt    *time.Time    // Soft-delete marker. Accounts are never hard-deleted.
}

// IsActive reports whether the account has completed email verification.
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// HasPassword reports whether the account can authenticate with a password.
// Google-only accounts carry no password hash.
func (a *Account) HasPassword() bool {
	return a.PasswordHash != ""
}
