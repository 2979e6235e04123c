package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/domain"
	portsrepo "github.com/SscSPs/firm_books/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/firm_books/internal/core/ports/services"
	"github.com/SscSPs/firm_books/internal/dto"
)

type firmService struct {
	BaseService
	firmRepo portsrepo.FirmRepositoryFacade
	now      func() time.Time
}

// NewFirmService creates a new FirmService.
func NewFirmService(firmRepo portsrepo.FirmRepositoryFacade) portssvc.FirmSvcFacade {
	return &firmService{firmRepo: firmRepo, now: time.Now}
}

var _ portssvc.FirmSvcFacade = (*firmService)(nil)

// GetProfile returns the stored profile, or an empty one if none has been saved.
func (s *firmService) GetProfile(ctx context.Context) (*domain.FirmProfile, error) {
	profile, err := s.firmRepo.GetFirmProfile(ctx)
	if errors.Is(err, apperrors.ErrNotFound) {
		return &domain.FirmProfile{}, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve firm profile")
		return nil, fmt.Errorf("failed to retrieve firm profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile replaces the profile, keeping its original creation audit fields.
func (s *firmService) UpdateProfile(ctx context.Context, req dto.UpdateFirmProfileRequest, userID string) (*domain.FirmProfile, error) {
	current, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	updated := req.ToFirmProfile(*current)
	updated.Touch(userID, s.now().UTC())

	if err := s.firmRepo.SaveFirmProfile(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to save firm profile")
		return nil, fmt.Errorf("failed to save firm profile: %w", err)
	}

	s.LogInfo(ctx, "Firm profile updated", slog.String("firm_name", updated.FirmName))
	return &updated, nil
}
