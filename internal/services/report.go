package services

import (
	"context"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/utils"
)

type ReportServiceInterface interface {
	GetRequestReport(ctx context.Context, filter dto.RequestFilterDTO) ([]dto.RequestReportItem, error)
}

// ReportService собирает плоские строки отчёта по заявкам с
// денормализованными именами оборудования, техников и команд.
type ReportService struct {
	requestRepo    repositories.RequestRepositoryInterface
	equipmentRepo  repositories.EquipmentRepositoryInterface
	technicianRepo repositories.TechnicianRepositoryInterface
	teamRepo       repositories.TeamRepositoryInterface
}

func NewReportService(
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	technicianRepo repositories.TechnicianRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
) ReportServiceInterface {
	return &ReportService{
		requestRepo:    requestRepo,
		equipmentRepo:  equipmentRepo,
		technicianRepo: technicianRepo,
		teamRepo:       teamRepo,
	}
}

func (s *ReportService) GetRequestReport(ctx context.Context, filter dto.RequestFilterDTO) ([]dto.RequestReportItem, error) {
	requests, err := s.requestRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	equipment, err := s.equipmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	technicians, err := s.technicianRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	equipmentByID := make(map[string]entities.Equipment, len(equipment))
	for i := range equipment {
		equipmentByID[equipment[i].ID] = equipment[i]
	}
	technicianNames := make(map[string]string, len(technicians))
	for i := range technicians {
		technicianNames[technicians[i].ID] = technicians[i].Name
	}
	teamNames := make(map[string]string, len(teams))
	for i := range teams {
		teamNames[teams[i].ID] = teams[i].Name
	}

	now := time.Now()
	items := make([]dto.RequestReportItem, 0, len(requests))
	for i := range requests {
		req := requests[i]
		if filter.EquipmentID != "" && req.EquipmentID != filter.EquipmentID {
			continue
		}
		if filter.AssignedTo != "" && (req.AssignedTo == nil || *req.AssignedTo != filter.AssignedTo) {
			continue
		}
		if filter.Stage != "" && string(req.Stage) != filter.Stage {
			continue
		}

		item := dto.RequestReportItem{
			RequestID:     req.ID,
			Type:          string(req.Type),
			Priority:      string(req.Priority),
			Stage:         string(req.Stage),
			ReportedBy:    req.ReportedBy,
			CreatedAt:     req.CreatedAt,
			ScheduledDate: req.ScheduledDate,
			DurationHours: req.DurationHours,
			Overdue:       IsOverdue(&req, now),
		}
		if eq, ok := equipmentByID[req.EquipmentID]; ok {
			item.EquipmentName = eq.Name
			item.SerialNumber = eq.SerialNumber
		}
		item.Technician = technicianNames[utils.SafeDeref(req.AssignedTo)]
		item.Team = teamNames[utils.SafeDeref(req.TeamID)]
		items = append(items, item)
	}
	return items, nil
}
