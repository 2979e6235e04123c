package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/domain"
	portsrepo "github.com/SscSPs/firm_books/internal/core/ports/repositories"
)

// InventoryRepository holds stock lines keyed by ID.
type InventoryRepository struct {
	store
	items map[string]domain.InventoryItem
}

// NewInventoryRepository returns an empty repository.
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{items: make(map[string]domain.InventoryItem)}
}

var _ portsrepo.InventoryRepositoryFacade = (*InventoryRepository)(nil)

func (r *InventoryRepository) FindItemByID(_ context.Context, itemID string) (*domain.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &item, nil
}

// ListItems returns every stock line, most recently created first.
func (r *InventoryRepository) ListItems(_ context.Context) ([]domain.InventoryItem, error) {
	r.mu.RLock()
	out := make([]domain.InventoryItem, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ItemID < out[j].ItemID
	})
	return out, nil
}

func (r *InventoryRepository) SaveItem(_ context.Context, item domain.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.items[item.ItemID]; ok {
		item.CreatedAt = existing.CreatedAt
		item.CreatedBy = existing.CreatedBy
	}
	r.items[item.ItemID] = item
	return nil
}

func (r *InventoryRepository) DeleteItem(_ context.Context, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[itemID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.items, itemID)
	return nil
}
