package model

import (
	"time"

	"github.com/google/uuid"

	"ezstudy/internal/domain/entity"
)

// ProfileModel mirrors the 'users' table holding user-facing identity data.
// AccountID references accounts.id and is unique: one profile per account.
type ProfileModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID   uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"`
	FullName    string     `gorm:"type:varchar(100);not null"`
	AvatarURL   string     `gorm:"type:text"`
	DateOfBirth *time.Time `gorm:""`
	Role        string     `gorm:"type:varchar(20);not null;default:'student'"`
	WorkspaceID *uuid.UUID `gorm:"type:uuid;index"`
	Star        int        `gorm:"not null;default:0"`
	Diamond     int        `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "users"
}

// ToEntity converts the persistence model to a domain entity.
func (m *ProfileModel) ToEntity() *entity.Profile {
	return &entity.Profile{
		ID:          m.ID,
		AccountID:   m.AccountID,
		FullName:    m.FullName,
		AvatarURL:   m.AvatarURL,
		DateOfBirth: m.DateOfBirth,
		Role:        entity.Role(m.Role),
		WorkspaceID: m.WorkspaceID,
		Star:        m.Star,
		Diamond:     m.Diamond,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ProfileModelFromEntity converts a domain entity to its persistence model.
func ProfileModelFromEntity(profile *entity.Profile) *ProfileModel {
	return &ProfileModel{
		ID:          profile.ID,
		AccountID:   profile.AccountID,
		FullName:    profile.FullName,
		AvatarURL:   profile.AvatarURL,
		DateOfBirth: profile.DateOfBirth,
		Role:        profile.Role.String(),
		WorkspaceID: profile.WorkspaceID,
		Star:        profile.Star,
		Diamond:     profile.Diamond,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	}
}
