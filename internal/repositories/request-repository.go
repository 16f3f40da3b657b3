package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"gearguard/internal/entities"
	"gearguard/internal/storage"
	apperrors "gearguard/pkg/errors"
)

type RequestRepositoryInterface interface {
	List(ctx context.Context) ([]entities.Request, error)
	Find(ctx context.Context, id string) (*entities.Request, error)
	Create(ctx context.Context, request entities.Request) (*entities.Request, error)
	Update(ctx context.Context, id string, request entities.Request) error
	Delete(ctx context.Context, id string) error
}

type RequestRepository struct {
	mu      sync.RWMutex
	items   []entities.Request
	storage storage.Storage
}

func NewRequestRepository(ctx context.Context, st storage.Storage) (RequestRepositoryInterface, error) {
	items, err := loadRecords[entities.Request](ctx, st, storage.CollectionRequests)
	if err != nil {
		return nil, err
	}
	return &RequestRepository{items: items, storage: st}, nil
}

func (r *RequestRepository) flush(ctx context.Context) error {
	return saveRecords(ctx, r.storage, storage.CollectionRequests, r.items)
}

func (r *RequestRepository) List(_ context.Context) ([]entities.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Request, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *RequestRepository) Find(_ context.Context, id string) (*entities.Request, error) {
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

// Create назначает id, стадию New, нулевую длительность и метку создания.
func (r *RequestRepository) Create(ctx context.Context, request entities.Request) (*entities.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	request.ID = uuid.New().String()
	request.Stage = entities.StageNew
	request.DurationHours = 0
	request.CreatedAt = time.Now().UTC()

	r.items = append(r.items, request)
	if err := r.flush(ctx); err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *RequestRepository) Update(ctx context.Context, id string, request entities.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			request.ID = id
			r.items[i] = request
			return r.flush(ctx)
		}
	}
	return apperrors.ErrNotFound
}

func (r *RequestRepository) Delete(ctx context.Context, id string) error {
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
