package memory

import (
	"context"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/domain"
	portsrepo "github.com/SscSPs/firm_books/internal/core/ports/repositories"
)

// FirmRepository holds at most one profile.
type FirmRepository struct {
	store
	profile *domain.FirmProfile
}

// NewFirmRepository returns a repository with no profile saved.
func NewFirmRepository() *FirmRepository {
	return &FirmRepository{}
}

var _ portsrepo.FirmRepositoryFacade = (*FirmRepository)(nil)

func (r *FirmRepository) GetFirmProfile(_ context.Context) (*domain.FirmProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.profile == nil {
		return nil, apperrors.ErrNotFound
	}
	profile := *r.profile
	return &profile, nil
}

func (r *FirmRepository) SaveFirmProfile(_ context.Context, profile domain.FirmProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profile = &profile
	return nil
}
