package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"gearguard/internal/entities"
	"gearguard/internal/storage"
	apperrors "gearguard/pkg/errors"
)

type TechnicianRepositoryInterface interface {
	List(ctx context.Context) ([]entities.Technician, error)
	Find(ctx context.Context, id string) (*entities.Technician, error)
	Create(ctx context.Context, technician entities.Technician) (*entities.Technician, error)
	Update(ctx context.Context, id string, technician entities.Technician) error
	Delete(ctx context.Context, id string) error
}

type TechnicianRepository struct {
	mu      sync.RWMutex
	items   []entities.Technician
	storage storage.Storage
}

func NewTechnicianRepository(ctx context.Context, st storage.Storage) (TechnicianRepositoryInterface, error) {
	items, err := loadRecords[entities.Technician](ctx, st, storage.CollectionTechnicians)
	if err != nil {
		return nil, err
	}
	return &TechnicianRepository{items: items, storage: st}, nil
}

func (r *TechnicianRepository) flush(ctx context.Context) error {
	return saveRecords(ctx, r.storage, storage.CollectionTechnicians, r.items)
}

func (r *TechnicianRepository) List(_ context.Context) ([]entities.Technician, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Technician, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *TechnicianRepository) Find(_ context.Context, id string) (*entities.Technician, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].ID == id {
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *TechnicianRepository) Create(ctx context.Context, technician entities.Technician) (*entities.Technician, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	technician.ID = uuid.New().String()

	r.items = append(r.items, technician)
	if err := r.flush(ctx); err != nil {
		return nil, err
	}
	return &technician, nil
}

func (r *TechnicianRepository) Update(ctx context.Context, id string, technician entities.Technician) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			technician.ID = id
			r.items[i] = technician
			return r.flush(ctx)
		}
	}
	return apperrors.ErrNotFound
}

func (r *TechnicianRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return r.flush(ctx)
		}
	}
	return apperrors.ErrNotFound
}
