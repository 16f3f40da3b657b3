package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/events"
	"gearguard/internal/repositories"
	"gearguard/pkg/eventbus"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
)

type RequestServiceInterface interface {
	GetRequests(ctx context.Context, filter dto.RequestFilterDTO) ([]dto.RequestDTO, uint64, error)
	FindRequest(ctx context.Context, id string) (*dto.RequestDTO, error)
	CreateRequest(ctx context.Context, data dto.CreateRequestDTO) (*entities.Request, error)
	UpdateRequest(ctx context.Context, id string, data dto.UpdateRequestDTO) (*entities.Request, error)
	TransitionRequest(ctx context.Context, id string, data dto.TransitionRequestDTO) (*entities.Request, error)
	TechnicianStats(ctx context.Context, technicianID string) (*types.TechnicianRequestStats, error)
}

// RequestService — движок жизненного цикла заявок: создание с проверкой
// ссылок, машина переходов стадий и связанная мутация оборудования при Scrap.
type RequestService struct {
	requestRepo    repositories.RequestRepositoryInterface
	equipmentRepo  repositories.EquipmentRepositoryInterface
	technicianRepo repositories.TechnicianRepositoryInterface
	teamRepo       repositories.TeamRepositoryInterface
	bus            *eventbus.Bus
	logger         *zap.Logger
	now            func() time.Time
}

func NewRequestService(
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	technicianRepo repositories.TechnicianRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		requestRepo:    requestRepo,
		equipmentRepo:  equipmentRepo,
		technicianRepo: technicianRepo,
		teamRepo:       teamRepo,
		bus:            bus,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *RequestService) CreateRequest(ctx context.Context, data dto.CreateRequestDTO) (*entities.Request, error) {
	if strings.TrimSpace(data.Description) == "" {
		return nil, apperrors.NewInvalidInputError("описание заявки не может быть пустым")
	}

	reqType := entities.RequestType(data.Type)
	if reqType != entities.TypeCorrective && reqType != entities.TypePreventive {
		return nil, apperrors.NewInvalidInputError("неизвестный тип заявки: %q", data.Type)
	}

	if reqType == entities.TypePreventive && data.ScheduledDate == nil {
		return nil, apperrors.NewInvalidInputError("для плановой (Preventive) заявки обязательна плановая дата")
	}

	equipment, err := s.equipmentRepo.Find(ctx, data.EquipmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewInvalidInputError("указанное оборудование не существует")
		}
		return nil, err
	}
	if equipment.IsScrapped {
		return nil, apperrors.ErrEquipmentScrapped
	}

	request := entities.Request{
		EquipmentID: equipment.ID,
		Type:        reqType,
		Description: data.Description,
		Priority:    entities.RequestPriority(data.Priority),
		AssignedTo:  data.AssignedTo,
		TeamID:      data.TeamID,
		ReportedBy:  data.ReportedBy,
	}
	if request.Priority == "" {
		request.Priority = entities.PriorityMedium
	}
	if !request.Priority.Valid() {
		return nil, apperrors.NewInvalidInputError("неизвестный приоритет заявки: %q", data.Priority)
	}
	if reqType == entities.TypePreventive {
		request.ScheduledDate = data.ScheduledDate
	}

	// Одноразовое автозаполнение из дефолтов оборудования: применяется
	// только к полям, которые вызывающий не передал, и никогда не
	// пересинхронизируется позже.
	if request.TeamID == nil || *request.TeamID == "" {
		request.TeamID = equipment.MaintenanceTeamID
	}
	if request.AssignedTo == nil || *request.AssignedTo == "" {
		request.AssignedTo = equipment.TechnicianID
	}

	if err := s.checkReferences(ctx, request.AssignedTo, request.TeamID); err != nil {
		return nil, err
	}

	created, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		s.logger.Error("не удалось сохранить заявку", zap.Error(err))
		return nil, err
	}

	s.logger.Info("создана заявка на обслуживание",
		zap.String("requestId", created.ID),
		zap.String("equipmentId", created.EquipmentID),
		zap.String("type", string(created.Type)),
	)
	return created, nil
}

// TransitionRequest применяет переход стадии. Repaired требует длительности,
// Scrap — явного подтверждения и влечёт списание оборудования.
func (s *RequestService) TransitionRequest(ctx context.Context, id string, data dto.TransitionRequestDTO) (*entities.Request, error) {
	request, err := s.requestRepo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	target := entities.RequestStage(data.Stage)
	if !target.Valid() || !entities.CanTransition(request.Stage, target) {
		return nil, apperrors.NewInvalidTransitionError(string(request.Stage), data.Stage)
	}

	previousStage := request.Stage
	previousDuration := request.DurationHours

	switch target {
	case entities.StageRepaired:
		if !data.Duration.Valid {
			return nil, apperrors.NewInvalidInputError("для завершения заявки укажите длительность работ в часах")
		}
		if data.Duration.Float64 < 0 {
			return nil, apperrors.NewInvalidInputError("длительность работ не может быть отрицательной")
		}
		request.Stage = entities.StageRepaired
		request.DurationHours = data.Duration.Float64

	case entities.StageScrap:
		if !data.Confirm {
			return nil, apperrors.NewInvalidInputError("перевод в Scrap требует явного подтверждения: оборудование будет помечено как непригодное")
		}
		request.Stage = entities.StageScrap

	default:
		request.Stage = target
	}

	if err := s.requestRepo.Update(ctx, id, *request); err != nil {
		return nil, err
	}

	if target == entities.StageScrap {
		if err := s.scrapEquipment(ctx, request.EquipmentID); err != nil {
			// Компенсация: откатываем стадию, чтобы не оставить заявку
			// в Scrap при неисписанном оборудовании.
			request.Stage = previousStage
			request.DurationHours = previousDuration
			if rbErr := s.requestRepo.Update(ctx, id, *request); rbErr != nil {
				s.logger.Error("не удалось откатить стадию заявки после сбоя списания",
					zap.String("requestId", id), zap.Error(rbErr))
			}
			return nil, err
		}

		if s.bus != nil {
			s.bus.Publish(ctx, events.EquipmentScrappedEvent{
				RequestID:   request.ID,
				EquipmentID: request.EquipmentID,
			})
		}
	}

	s.logger.Info("стадия заявки изменена",
		zap.String("requestId", id),
		zap.String("from", string(previousStage)),
		zap.String("to", string(request.Stage)),
	)
	return request, nil
}

func (s *RequestService) scrapEquipment(ctx context.Context, equipmentID string) error {
	equipment, err := s.equipmentRepo.Find(ctx, equipmentID)
	if err != nil {
		return err
	}
	equipment.IsScrapped = true
	equipment.Status = entities.StatusDown
	return s.equipmentRepo.Update(ctx, equipmentID, *equipment)
}

// UpdateRequest — общий патч полей. Смену стадии отклоняет: её делает
// только TransitionRequest, иначе списание оборудования можно обойти.
func (s *RequestService) UpdateRequest(ctx context.Context, id string, data dto.UpdateRequestDTO) (*entities.Request, error) {
	if data.Stage.Valid {
		return nil, apperrors.NewInvalidInputError("стадия меняется только операцией перехода, а не редактированием")
	}

	request, err := s.requestRepo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if data.Description.Valid {
		if strings.TrimSpace(data.Description.String) == "" {
			return nil, apperrors.NewInvalidInputError("описание заявки не может быть пустым")
		}
		request.Description = data.Description.String
	}
	if data.Priority.Valid {
		priority := entities.RequestPriority(data.Priority.String)
		if !priority.Valid() {
			return nil, apperrors.NewInvalidInputError("неизвестный приоритет заявки: %q", data.Priority.String)
		}
		request.Priority = priority
	}
	if data.AssignedTo.Valid {
		request.AssignedTo = nullableID(data.AssignedTo.String)
	}
	if data.TeamID.Valid {
		request.TeamID = nullableID(data.TeamID.String)
	}
	if data.ReportedBy.Valid {
		request.ReportedBy = data.ReportedBy.String
	}
	if data.ScheduledDate.Valid && request.Type == entities.TypePreventive {
		scheduled := data.ScheduledDate.Time
		request.ScheduledDate = &scheduled
	}

	if err := s.checkReferences(ctx, request.AssignedTo, request.TeamID); err != nil {
		return nil, err
	}

	if err := s.requestRepo.Update(ctx, id, *request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *RequestService) checkReferences(ctx context.Context, technicianID, teamID *string) error {
	if technicianID != nil && *technicianID != "" {
		if _, err := s.technicianRepo.Find(ctx, *technicianID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewInvalidInputError("указанный техник не существует")
			}
			return err
		}
	}
	if teamID != nil && *teamID != "" {
		if _, err := s.teamRepo.Find(ctx, *teamID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewInvalidInputError("указанная команда не существует")
			}
			return err
		}
	}
	return nil
}

func (s *RequestService) GetRequests(ctx context.Context, filter dto.RequestFilterDTO) ([]dto.RequestDTO, uint64, error) {
	requests, err := s.requestRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	equipmentNames, technicianNames, err := s.referenceNames(ctx)
	if err != nil {
		return nil, 0, err
	}

	now := s.now()
	result := make([]dto.RequestDTO, 0, len(requests))
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

		item := dto.RequestDTO{
			Request:       req,
			Overdue:       IsOverdue(&req, now),
			EquipmentName: equipmentNames[req.EquipmentID],
		}
		if req.AssignedTo != nil {
			item.TechnicianName = technicianNames[*req.AssignedTo]
		}
		result = append(result, item)
	}
	return result, uint64(len(result)), nil
}

func (s *RequestService) FindRequest(ctx context.Context, id string) (*dto.RequestDTO, error) {
	request, err := s.requestRepo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	item := dto.RequestDTO{
		Request: *request,
		Overdue: IsOverdue(request, s.now()),
	}
	if equipment, err := s.equipmentRepo.Find(ctx, request.EquipmentID); err == nil {
		item.EquipmentName = equipment.Name
	}
	if request.AssignedTo != nil {
		if technician, err := s.technicianRepo.Find(ctx, *request.AssignedTo); err == nil {
			item.TechnicianName = technician.Name
		}
	}
	return &item, nil
}

// TechnicianStats — чистая свёртка по коллекции, без хранимого состояния.
func (s *RequestService) TechnicianStats(ctx context.Context, technicianID string) (*types.TechnicianRequestStats, error) {
	requests, err := s.requestRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &types.TechnicianRequestStats{}
	for i := range requests {
		req := requests[i]
		if req.AssignedTo == nil || *req.AssignedTo != technicianID {
			continue
		}
		switch req.Stage {
		case entities.StageNew, entities.StageInProgress:
			stats.PendingCount++
		case entities.StageRepaired:
			stats.CompletedCount++
		case entities.StageScrap:
			stats.ScrapCount++
		}
	}
	return stats, nil
}

func (s *RequestService) referenceNames(ctx context.Context) (map[string]string, map[string]string, error) {
	equipment, err := s.equipmentRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	technicians, err := s.technicianRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	equipmentNames := make(map[string]string, len(equipment))
	for i := range equipment {
		equipmentNames[equipment[i].ID] = equipment[i].Name
	}
	technicianNames := make(map[string]string, len(technicians))
	for i := range technicians {
		technicianNames[technicians[i].ID] = technicians[i].Name
	}
	return equipmentNames, technicianNames, nil
}

func nullableID(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
