// Package model defines the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"

	"ezstudy/internal/domain/entity"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type AccountModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string     `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string     `gorm:"type:varchar(255)"`
	Provider     string     `gorm:"type:varchar(20);not null;default:'local'"`
	Status       string     `gorm:"type:varchar(20);not null;default:'inactive'"`
	GoogleID     *string    `gorm:"type:varchar(255);uniqueIndex"`
	RefreshToken string     `gorm:"type:text"`
	LastLoginAt  *time.Time `gorm:""`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`

	Profile *ProfileModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts the persistence model to a domain entity.
func (m *AccountModel) ToEntity() *entity.Account {
	googleID := ""
	if m.GoogleID != nil {
		googleID = *m.GoogleID
	}

	return &entity.Account{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Provider:     entity.AuthProvider(m.Provider),
		Status:       entity.AccountStatus(m.Status),
		GoogleID:     googleID,
		RefreshToken: m.RefreshToken,
		LastLoginAt:  m.LastLoginAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    m.DeletedAt,
	}
}

// AccountModelFromEntity converts a domain entity to its persistence model.
// An empty GoogleID maps to NULL so the unique index ignores accounts
// without a linked Google identity.
func AccountModelFromEntity(account *entity.Account) *AccountModel {
	var googleID *string
	if account.GoogleID != "" {
		googleID = &account.GoogleID
	}

	return &AccountModel{
		ID:           account.ID,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		Provider:     account.Provider.String(),
		Status:       account.Status.String(),
		GoogleID:     googleID,
		RefreshToken: account.RefreshToken,
		LastLoginAt:  account.LastLoginAt,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
		DeletedAt:    account.DeletedAt,
	}
}
