package services

import (
	"context"

	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/dto"
)

// FirmSvcFacade manages the single firm profile.
type FirmSvcFacade interface {
	// GetProfile returns the stored profile, or an empty one if none has been saved.
	GetProfile(ctx context.Context) (*domain.FirmProfile, error)

	// UpdateProfile replaces the profile.
	UpdateProfile(ctx context.Context, req dto.UpdateFirmProfileRequest, userID string) (*domain.FirmProfile, error)
}
