package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"gearguard/internal/entities"
	"gearguard/internal/storage"
	apperrors "gearguard/pkg/errors"
)

type EquipmentRepositoryInterface interface {
	List(ctx context.Context) ([]entities.Equipment, error)
	Find(ctx context.Context, id string) (*entities.Equipment, error)
	Create(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error)
	Update(ctx context.Context, id string, equipment entities.Equipment) error
	Delete(ctx context.Context, id string) error
}

type EquipmentRepository struct {
	mu      sync.RWMutex
	items   []entities.Equipment
	storage storage.Storage
}

func NewEquipmentRepository(ctx context.Context, st storage.Storage) (EquipmentRepositoryInterface, error) {
	items, err := loadRecords[entities.Equipment](ctx, st, storage.CollectionEquipment)
	if err != nil {
		return nil, err
	}
	return &EquipmentRepository{items: items, storage: st}, nil
}

func (r *EquipmentRepository) flush(ctx context.Context) error {
	return saveRecords(ctx, r.storage, storage.CollectionEquipment, r.items)
}

// List возвращает копию коллекции в порядке добавления.
func (r *EquipmentRepository) List(_ context.Context) ([]entities.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Equipment, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *EquipmentRepository) Find(_ context.Context, id string) (*entities.Equipment, error) {
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

func (r *EquipmentRepository) Create(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	equipment.ID = uuid.New().String()
	equipment.IsScrapped = false

	r.items = append(r.items, equipment)
	if err := r.flush(ctx); err != nil {
		return nil, err
	}
	return &equipment, nil
}

func (r *EquipmentRepository) Update(ctx context.Context, id string, equipment entities.Equipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			equipment.ID = id
			r.items[i] = equipment
			return r.flush(ctx)
		}
	}
	return apperrors.ErrNotFound
}

func (r *EquipmentRepository) Delete(ctx context.Context, id string) error {
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
