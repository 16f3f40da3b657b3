package repositories

import (
	"context"
	"sync"

	"gearguard/internal/entities"
	"gearguard/internal/storage"
	apperrors "gearguard/pkg/errors"
)

// UserRepository хранит профили по внешнему идентификатору пользователя
// (id назначает identity-провайдер, не мы). Профили никогда не удаляются.
type UserRepositoryInterface interface {
	List(ctx context.Context) ([]entities.UserProfile, error)
	Find(ctx context.Context, userID string) (*entities.UserProfile, error)
	Create(ctx context.Context, profile entities.UserProfile) (*entities.UserProfile, error)
	Update(ctx context.Context, userID string, profile entities.UserProfile) error
}

type UserRepository struct {
	mu      sync.RWMutex
	items   []entities.UserProfile
	storage storage.Storage
}

func NewUserRepository(ctx context.Context, st storage.Storage) (UserRepositoryInterface, error) {
	items, err := loadRecords[entities.UserProfile](ctx, st, storage.CollectionUsers)
	if err != nil {
		return nil, err
	}
	return &UserRepository{items: items, storage: st}, nil
}

func (r *UserRepository) flush(ctx context.Context) error {
	return saveRecords(ctx, r.storage, storage.CollectionUsers, r.items)
}

func (r *UserRepository) List(_ context.Context) ([]entities.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.UserProfile, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *UserRepository) Find(_ context.Context, userID string) (*entities.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].UserID == userID {
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *UserRepository) Create(ctx context.Context, profile entities.UserProfile) (*entities.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, profile)
	if err := r.flush(ctx); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *UserRepository) Update(ctx context.Context, userID string, profile entities.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].UserID == userID {
			profile.UserID = userID
			r.items[i] = profile
			return r.flush(ctx)
		}
	}
	return apperrors.ErrNotFound
}
