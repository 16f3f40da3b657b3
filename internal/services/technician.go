package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
)

type TechnicianServiceInterface interface {
	GetTechnicians(ctx context.Context) ([]entities.Technician, uint64, error)
	GetTeams(ctx context.Context) ([]entities.Team, error)
	GetTeamMembers(ctx context.Context, teamID string) ([]entities.Technician, error)
	CreateTechnician(ctx context.Context, data dto.CreateTechnicianDTO) (*entities.Technician, error)
	UpdateTechnician(ctx context.Context, id string, data dto.UpdateTechnicianDTO) (*entities.Technician, error)
	DeleteTechnician(ctx context.Context, id string) error
}

type TechnicianService struct {
	technicianRepo repositories.TechnicianRepositoryInterface
	teamRepo       repositories.TeamRepositoryInterface
	logger         *zap.Logger
}

func NewTechnicianService(
	technicianRepo repositories.TechnicianRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	logger *zap.Logger,
) TechnicianServiceInterface {
	return &TechnicianService{
		technicianRepo: technicianRepo,
		teamRepo:       teamRepo,
		logger:         logger,
	}
}

func (s *TechnicianService) GetTechnicians(ctx context.Context) ([]entities.Technician, uint64, error) {
	items, err := s.technicianRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, uint64(len(items)), nil
}

func (s *TechnicianService) GetTeams(ctx context.Context) ([]entities.Team, error) {
	return s.teamRepo.List(ctx)
}

func (s *TechnicianService) GetTeamMembers(ctx context.Context, teamID string) ([]entities.Technician, error) {
	if _, err := s.teamRepo.Find(ctx, teamID); err != nil {
		return nil, err
	}

	items, err := s.technicianRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	members := make([]entities.Technician, 0, len(items))
	for i := range items {
		if items[i].TeamID != nil && *items[i].TeamID == teamID {
			members = append(members, items[i])
		}
	}
	return members, nil
}

func (s *TechnicianService) CreateTechnician(ctx context.Context, data dto.CreateTechnicianDTO) (*entities.Technician, error) {
	if data.TeamID != nil && *data.TeamID != "" {
		if _, err := s.teamRepo.Find(ctx, *data.TeamID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewInvalidInputError("указанная команда не существует")
			}
			return nil, err
		}
	}

	technician := entities.Technician{
		Name:   data.Name,
		Role:   data.Role,
		TeamID: data.TeamID,
	}
	if technician.Role == "" {
		technician.Role = "Technician"
	}
	return s.technicianRepo.Create(ctx, technician)
}

func (s *TechnicianService) UpdateTechnician(ctx context.Context, id string, data dto.UpdateTechnicianDTO) (*entities.Technician, error) {
	technician, err := s.technicianRepo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if data.Name.Valid {
		technician.Name = data.Name.String
	}
	if data.Role.Valid {
		technician.Role = data.Role.String
	}
	if data.TeamID.Valid {
		teamID := nullableID(data.TeamID.String)
		if teamID != nil {
			if _, err := s.teamRepo.Find(ctx, *teamID); err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, apperrors.NewInvalidInputError("указанная команда не существует")
				}
				return nil, err
			}
		}
		technician.TeamID = teamID
	}

	if err := s.technicianRepo.Update(ctx, id, *technician); err != nil {
		return nil, err
	}
	return technician, nil
}

func (s *TechnicianService) DeleteTechnician(ctx context.Context, id string) error {
	return s.technicianRepo.Delete(ctx, id)
}
