package handler

import (
	"log/slog"
	"net/http"
	"time"

	"ezstudy/internal/delivery/http/middleware"
	"ezstudy/internal/delivery/http/response"
	"ezstudy/internal/domain/entity"
	"ezstudy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(profileUC usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUC: profileUC,
		logger:    logger,
	}
}

type updateProfileRequest struct {
	FullName    *string    `json:"fullName" validate:"omitempty,max=100"`
	AvatarURL   *string    `json:"avatarUrl" validate:"omitempty,url"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
}

type profileView struct {
	ID          string     `json:"id"`
	AccountID   string     `json:"accountId"`
	FullName    string     `json:"fullName"`
	AvatarURL   string     `json:"avatarUrl,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Role        string     `json:"role"`
	Star        int        `json:"star"`
	Diamond     int        `json:"diamond"`
}

func toProfileView(profile *entity.Profile) profileView {
	return profileView{
		ID:          profile.ID.String(),
		AccountID:   profile.AccountID.String(),
		FullName:    profile.FullName,
		AvatarURL:   profile.AvatarURL,
		DateOfBirth: profile.DateOfBirth,
		Role:        profile.Role.String(),
		Star:        profile.Star,
		Diamond:     profile.Diamond,
	}
}

// accountIDFromContext reads the account ID set by the Authenticate middleware.
func accountIDFromContext(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(middleware.ContextKeyAccountID).(uuid.UUID)

	return id, ok
}

// GetProfile returns the authenticated user's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileView(profile), "")
}

// UpdateProfile applies partial updates to the authenticated user's profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), accountID, usecase.UpdateProfileInput{
		FullName:    req.FullName,
		AvatarURL:   req.AvatarURL,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileView(profile), "Profile updated successfully")
}
