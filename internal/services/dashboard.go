package services

import (
	"context"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
)

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*dto.DashboardDTO, error)
}

type DashboardService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	requestRepo   repositories.RequestRepositoryInterface
}

func NewDashboardService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
) DashboardServiceInterface {
	return &DashboardService{equipmentRepo: equipmentRepo, requestRepo: requestRepo}
}

func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardDTO, error) {
	equipment, err := s.equipmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardDTO{
		TotalEquipment:  len(equipment),
		EquipmentStatus: make(map[string]int),
	}
	for i := range equipment {
		stats.EquipmentStatus[string(equipment[i].Status)]++
	}

	for i := range requests {
		req := requests[i]
		if !req.Stage.IsTerminal() {
			stats.ActiveRequests++
			if req.Priority == entities.PriorityCritical {
				stats.CriticalIssues++
			}
		}
		if req.Stage == entities.StageRepaired {
			stats.CompletedJobs++
		}
	}
	return stats, nil
}
