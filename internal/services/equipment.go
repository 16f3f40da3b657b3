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

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, includeScrapped bool) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, data dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id string, data dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) (*dto.DeleteEquipmentResultDTO, error)
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	requestRepo   repositories.RequestRepositoryInterface
	teamRepo      repositories.TeamRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		requestRepo:   requestRepo,
		teamRepo:      teamRepo,
		logger:        logger,
	}
}

// GetEquipments возвращает оборудование в порядке добавления. Списанное
// скрывается для пикеров новых заявок, но остаётся видимым в истории.
func (s *EquipmentService) GetEquipments(ctx context.Context, includeScrapped bool) ([]entities.Equipment, uint64, error) {
	items, err := s.equipmentRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	if includeScrapped {
		return items, uint64(len(items)), nil
	}

	filtered := make([]entities.Equipment, 0, len(items))
	for i := range items {
		if !items[i].IsScrapped {
			filtered = append(filtered, items[i])
		}
	}
	return filtered, uint64(len(filtered)), nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	return s.equipmentRepo.Find(ctx, id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, data dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	if data.MaintenanceTeamID != nil && *data.MaintenanceTeamID != "" {
		if _, err := s.teamRepo.Find(ctx, *data.MaintenanceTeamID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewInvalidInputError("указанная команда обслуживания не существует")
			}
			return nil, err
		}
	}

	equipment := entities.Equipment{
		Name:              data.Name,
		SerialNumber:      data.SerialNumber,
		Category:          entities.EquipmentCategory(data.Category),
		Department:        data.Department,
		EmployeeID:        data.EmployeeID,
		MaintenanceTeamID: data.MaintenanceTeamID,
		TechnicianID:      data.TechnicianID,
		Status:            entities.EquipmentStatus(data.Status),
		Location:          data.Location,
		PurchaseDate:      data.PurchaseDate,
		WarrantyEnd:       data.WarrantyEnd,
	}
	if equipment.Status == "" {
		equipment.Status = entities.StatusOperational
	}
	if !equipment.Category.Valid() {
		return nil, apperrors.NewInvalidInputError("неизвестная категория оборудования: %q", data.Category)
	}
	if !equipment.Status.Valid() {
		return nil, apperrors.NewInvalidInputError("неизвестный статус оборудования: %q", data.Status)
	}

	created, err := s.equipmentRepo.Create(ctx, equipment)
	if err != nil {
		s.logger.Error("не удалось сохранить оборудование", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id string, data dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	equipment, err := s.equipmentRepo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if data.Name.Valid {
		equipment.Name = data.Name.String
	}
	if data.SerialNumber.Valid {
		equipment.SerialNumber = data.SerialNumber.String
	}
	if data.Category.Valid {
		category := entities.EquipmentCategory(data.Category.String)
		if !category.Valid() {
			return nil, apperrors.NewInvalidInputError("неизвестная категория оборудования: %q", data.Category.String)
		}
		equipment.Category = category
	}
	if data.Department.Valid {
		equipment.Department = data.Department.String
	}
	if data.EmployeeID.Valid {
		equipment.EmployeeID = nullableID(data.EmployeeID.String)
	}
	if data.MaintenanceTeamID.Valid {
		equipment.MaintenanceTeamID = nullableID(data.MaintenanceTeamID.String)
	}
	if data.TechnicianID.Valid {
		equipment.TechnicianID = nullableID(data.TechnicianID.String)
	}
	if data.Status.Valid {
		status := entities.EquipmentStatus(data.Status.String)
		if !status.Valid() {
			return nil, apperrors.NewInvalidInputError("неизвестный статус оборудования: %q", data.Status.String)
		}
		equipment.Status = status
	}
	if data.Location.Valid {
		equipment.Location = data.Location.String
	}
	if data.PurchaseDate.Valid {
		purchase := data.PurchaseDate.Time
		equipment.PurchaseDate = &purchase
	}
	if data.WarrantyEnd.Valid {
		warranty := data.WarrantyEnd.Time
		equipment.WarrantyEnd = &warranty
	}
	if data.IsScrapped.Valid {
		equipment.IsScrapped = data.IsScrapped.Bool
	}

	// Инвариант: списанное оборудование всегда в статусе Down.
	if equipment.IsScrapped {
		equipment.Status = entities.StatusDown
	}

	if err := s.equipmentRepo.Update(ctx, id, *equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}

// DeleteEquipment удаляет запись безусловно, но возвращает количество
// открытых заявок на неё, чтобы вызывающий мог предупредить пользователя.
func (s *EquipmentService) DeleteEquipment(ctx context.Context, id string) (*dto.DeleteEquipmentResultDTO, error) {
	requests, err := s.requestRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	openRequests := 0
	for i := range requests {
		if requests[i].EquipmentID == id && !requests[i].Stage.IsTerminal() {
			openRequests++
		}
	}
	if openRequests > 0 {
		s.logger.Warn("удаляется оборудование с открытыми заявками",
			zap.String("equipmentId", id),
			zap.Int("openRequests", openRequests),
		)
	}

	if err := s.equipmentRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.DeleteEquipmentResultDTO{OpenRequests: openRequests}, nil
}
