package repositories

import (
	"context"

	"github.com/SscSPs/firm_books/internal/core/domain"
)

// FirmRepositoryFacade loads and stores the single firm profile.
type FirmRepositoryFacade interface {
	// GetFirmProfile returns apperrors.ErrNotFound until a profile has been saved.
	GetFirmProfile(ctx context.Context) (*domain.FirmProfile, error)
	// SaveFirmProfile creates or replaces the profile.
	SaveFirmProfile(ctx context.Context, profile domain.FirmProfile) error
}
