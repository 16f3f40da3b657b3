package services

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/internal/storage"
	apperrors "gearguard/pkg/errors"
)

type requestTestEnv struct {
	service        *RequestService
	requestRepo    repositories.RequestRepositoryInterface
	equipmentRepo  repositories.EquipmentRepositoryInterface
	technicianRepo repositories.TechnicianRepositoryInterface
	equipment      *entities.Equipment
	technician     *entities.Technician
}

func newRequestTestEnv(t *testing.T) *requestTestEnv {
	t.Helper()
	ctx := context.Background()
	st := storage.NewMemoryStorage()

	equipmentRepo, err := repositories.NewEquipmentRepository(ctx, st)
	require.NoError(t, err)
	requestRepo, err := repositories.NewRequestRepository(ctx, st)
	require.NoError(t, err)
	technicianRepo, err := repositories.NewTechnicianRepository(ctx, st)
	require.NoError(t, err)
	teamRepo := repositories.NewTeamRepository()

	teamID := "tm1"
	technician, err := technicianRepo.Create(ctx, entities.Technician{
		Name: "Alice Johnson", Role: "Technician", TeamID: &teamID,
	})
	require.NoError(t, err)

	equipment, err := equipmentRepo.Create(ctx, entities.Equipment{
		Name:              "CNC Milling Machine",
		SerialNumber:      "CNC-2023-001",
		Category:          entities.CategoryMachine,
		Status:            entities.StatusOperational,
		MaintenanceTeamID: &teamID,
		TechnicianID:      &technician.ID,
	})
	require.NoError(t, err)

	svc := NewRequestService(requestRepo, equipmentRepo, technicianRepo, teamRepo, nil, zap.NewNop())

	return &requestTestEnv{
		service:        svc.(*RequestService),
		requestRepo:    requestRepo,
		equipmentRepo:  equipmentRepo,
		technicianRepo: technicianRepo,
		equipment:      equipment,
		technician:     technician,
	}
}

func (env *requestTestEnv) createRequest(t *testing.T, data dto.CreateRequestDTO) *entities.Request {
	t.Helper()
	if data.EquipmentID == "" {
		data.EquipmentID = env.equipment.ID
	}
	if data.Type == "" {
		data.Type = string(entities.TypeCorrective)
	}
	if data.Description == "" {
		data.Description = "Oil leak detected near spindle."
	}
	created, err := env.service.CreateRequest(context.Background(), data)
	require.NoError(t, err)
	return created
}

func TestCreateRequest_Defaults(t *testing.T) {
	env := newRequestTestEnv(t)

	created := env.createRequest(t, dto.CreateRequestDTO{ReportedBy: "Operator Dave"})

	assert.Equal(t, entities.StageNew, created.Stage, "новая заявка всегда стартует в New")
	assert.Equal(t, entities.PriorityMedium, created.Priority, "приоритет по умолчанию — Medium")
	assert.Zero(t, created.DurationHours)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateRequest_AutoFillFromEquipmentDefaults(t *testing.T) {
	env := newRequestTestEnv(t)

	created := env.createRequest(t, dto.CreateRequestDTO{})

	require.NotNil(t, created.TeamID)
	require.NotNil(t, created.AssignedTo)
	assert.Equal(t, *env.equipment.MaintenanceTeamID, *created.TeamID, "команда берётся из дефолтов оборудования")
	assert.Equal(t, env.technician.ID, *created.AssignedTo, "техник берётся из дефолтов оборудования")

	// Автозаполнение одноразовое: смена дефолтов оборудования не
	// трогает уже созданную заявку.
	ctx := context.Background()
	updated := *env.equipment
	updated.TechnicianID = nil
	updated.MaintenanceTeamID = nil
	require.NoError(t, env.equipmentRepo.Update(ctx, env.equipment.ID, updated))

	found, err := env.requestRepo.Find(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, env.technician.ID, *found.AssignedTo, "назначение не пересинхронизируется")
}

func TestCreateRequest_ExplicitAssignmentWins(t *testing.T) {
	env := newRequestTestEnv(t)
	ctx := context.Background()

	other, err := env.technicianRepo.Create(ctx, entities.Technician{Name: "Bob Smith", Role: "Technician"})
	require.NoError(t, err)

	created := env.createRequest(t, dto.CreateRequestDTO{AssignedTo: &other.ID})
	assert.Equal(t, other.ID, *created.AssignedTo, "явное назначение не перетирается дефолтом")
}

func TestCreateRequest_Validation(t *testing.T) {
	env := newRequestTestEnv(t)
	ctx := context.Background()

	_, err := env.service.CreateRequest(ctx, dto.CreateRequestDTO{
		EquipmentID: env.equipment.ID, Type: "Corrective", Description: "   ",
	})
	assert.ErrorAs(t, err, new(*apperrors.InvalidInputError), "пустое описание отклоняется")

	_, err = env.service.CreateRequest(ctx, dto.CreateRequestDTO{
		EquipmentID: env.equipment.ID, Type: "Emergency", Description: "broken",
	})
	assert.ErrorAs(t, err, new(*apperrors.InvalidInputError), "неизвестный тип отклоняется")

	_, err = env.service.CreateRequest(ctx, dto.CreateRequestDTO{
		EquipmentID: env.equipment.ID, Type: "Preventive", Description: "quarterly check",
	})
	assert.ErrorAs(t, err, new(*apperrors.InvalidInputError), "Preventive без плановой даты отклоняется")

	_, err = env.service.CreateRequest(ctx, dto.CreateRequestDTO{
		EquipmentID: env.equipment.ID, Type: "Corrective", Description: "broken", Priority: "Urgent",
	})
	assert.ErrorAs(t, err, new(*apperrors.InvalidInputError), "неизвестный приоритет отклоняется")

	_, err = env.service.CreateRequest(ctx, dto.CreateRequestDTO{
		EquipmentID: "missing", Type: "Corrective", Description: "broken",
	})
	assert.ErrorAs(t, err, new(*apperrors.InvalidInputError), "несуществующее оборудование отклоняется")

	unknown := "ghost"
	_, err = env.service.CreateRequest(ctx, dto.CreateRequestDTO{
		EquipmentID: env.equipment.ID, Type: "Corrective", Description: "broken", AssignedTo: &unknown,
	})
	assert.ErrorAs(t, err, new(*apperrors.InvalidInputError), "несуществующий техник отклоняется")
}

func TestCreateRequest_ScrappedEquipmentRejected(t *testing.T) {
	env := newRequestTestEnv(t)
	ctx := context.Background()

	scrapped := *env.equipment
	scrapped.IsScrapped = true
	scrapped.Status = entities.StatusDown
	require.NoError(t, env.equipmentRepo.Update(ctx, env.equipment.ID, scrapped))

	_, err := env.service.CreateRequest(ctx, dto.CreateRequestDTO{
		EquipmentID: env.equipment.ID, Type: "Corrective", Description: "broken",
	})
	assert.ErrorIs(t, err, apperrors.ErrEquipmentScrapped)
}

func TestCreateRequest_ScheduledDateIgnoredForCorrective(t *testing.T) {
	env := newRequestTestEnv(t)
	scheduled := time.Now().Add(24 * time.Hour)

	created := env.createRequest(t, dto.CreateRequestDTO{
		Type:          "Corrective",
		ScheduledDate: &scheduled,
	})
	assert.Nil(t, created.ScheduledDate, "плановая дата хранится только у Preventive")
}

func TestTransitionRequest_Matrix(t *testing.T) {
	cases := []struct {
		from    entities.RequestStage
		to      entities.RequestStage
		allowed bool
	}{
		{entities.StageNew, entities.StageInProgress, true},
		{entities.StageNew, entities.StageRepaired, true},
		{entities.StageNew, entities.StageScrap, true},
		{entities.StageNew, entities.StageNew, false},
		{entities.StageInProgress, entities.StageNew, true},
		{entities.StageInProgress, entities.StageRepaired, true},
		{entities.StageInProgress, entities.StageScrap, true},
		{entities.StageInProgress, entities.StageInProgress, false},
		{entities.StageRepaired, entities.StageNew, false},
		{entities.StageRepaired, entities.StageInProgress, false},
		{entities.StageRepaired, entities.StageScrap, false},
		{entities.StageScrap, entities.StageNew, false},
		{entities.StageScrap, entities.StageInProgress, false},
		{entities.StageScrap, entities.StageRepaired, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			env := newRequestTestEnv(t)
			ctx := context.Background()

			created := env.createRequest(t, dto.CreateRequestDTO{})
			if tc.from != entities.StageNew {
				stored, err := env.requestRepo.Find(ctx, created.ID)
				require.NoError(t, err)
				stored.Stage = tc.from
				require.NoError(t, env.requestRepo.Update(ctx, created.ID, *stored))
			}

			payload := dto.TransitionRequestDTO{Stage: string(tc.to), Confirm: true}
			if tc.to == entities.StageRepaired {
				payload.Duration = null.Float64From(2.5)
			}

			_, err := env.service.TransitionRequest(ctx, created.ID, payload)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorAs(t, err, new(*apperrors.InvalidTransitionError))
			}
		})
	}
}

func TestTransitionRequest_UnknownStageRejected(t *testing.T) {
	env := newRequestTestEnv(t)
	created := env.createRequest(t, dto.CreateRequestDTO{})

	_, err := env.service.TransitionRequest(context.Background(), created.ID, dto.TransitionRequestDTO{Stage: "Done"})
	assert.ErrorAs(t, err, new(*apperrors.InvalidTransitionError), "неизвестная стадия отклоняется как недопустимый переход")
}

func TestTransitionRequest_RepairedRequiresDuration(t *testing.T) {
	env := newRequestTestEnv(t)
	ctx := context.Background()
	created := env.createRequest(t, dto.CreateRequestDTO{})

	_, err := env.service.TransitionRequest(ctx, created.ID, dto.TransitionRequestDTO{Stage: "Repaired"})
	assert.ErrorAs(t, err, new(*apperrors.InvalidInputError), "Repaired без длительности отклоняется")

	_, err = env.service.TransitionRequest(ctx, created.ID, dto.TransitionRequestDTO{
		Stage: "Repaired", Duration: null.Float64From(-1),
	})
	assert.ErrorAs(t, err, new(*apperrors.InvalidInputError), "отрицательная длительность отклоняется")

	updated, err := env.service.TransitionRequest(ctx, created.ID, dto.TransitionRequestDTO{
		Stage: "Repaired", Duration: null.Float64From(3.5),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.StageRepaired, updated.Stage)
	assert.Equal(t, 3.5, updated.DurationHours)
}

func TestTransitionRequest_ScrapRequiresConfirmAndScrapsEquipment(t *testing.T) {
	env := newRequestTestEnv(t)
	ctx := context.Background()
	created := env.createRequest(t, dto.CreateRequestDTO{})

	_, err := env.service.TransitionRequest(ctx, created.ID, dto.TransitionRequestDTO{Stage: "Scrap"})
	assert.ErrorAs(t, err, new(*apperrors.InvalidInputError), "Scrap без подтверждения отклоняется")

	stored, err := env.requestRepo.Find(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StageNew, stored.Stage, "отклонённый переход не меняет стадию")

	updated, err := env.service.TransitionRequest(ctx, created.ID, dto.TransitionRequestDTO{Stage: "Scrap", Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, entities.StageScrap, updated.Stage)

	equipment, err := env.equipmentRepo.Find(ctx, env.equipment.ID)
	require.NoError(t, err)
	assert.True(t, equipment.IsScrapped, "оборудование помечено как списанное")
	assert.Equal(t, entities.StatusDown, equipment.Status, "статус оборудования принудительно Down, даже из Operational")
}

func TestUpdateRequest_StageChangeRejected(t *testing.T) {
	env := newRequestTestEnv(t)
	created := env.createRequest(t, dto.CreateRequestDTO{})

	_, err := env.service.UpdateRequest(context.Background(), created.ID, dto.UpdateRequestDTO{
		Stage: null.StringFrom("Repaired"),
	})
	assert.ErrorAs(t, err, new(*apperrors.InvalidInputError), "смена стадии через редактирование запрещена")
}

func TestUpdateRequest_PartialFields(t *testing.T) {
	env := newRequestTestEnv(t)
	ctx := context.Background()
	created := env.createRequest(t, dto.CreateRequestDTO{ReportedBy: "Operator Dave"})

	updated, err := env.service.UpdateRequest(ctx, created.ID, dto.UpdateRequestDTO{
		Priority:    null.StringFrom(string(entities.PriorityCritical)),
		Description: null.StringFrom("Spindle jammed completely."),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.PriorityCritical, updated.Priority)
	assert.Equal(t, "Spindle jammed completely.", updated.Description)
	assert.Equal(t, "Operator Dave", updated.ReportedBy, "нетронутые поля сохраняются")

	// Сброс назначения пустой строкой.
	updated, err = env.service.UpdateRequest(ctx, created.ID, dto.UpdateRequestDTO{
		AssignedTo: null.StringFrom(""),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.AssignedTo)
}

func TestUpdateRequest_UnknownPriorityRejected(t *testing.T) {
	env := newRequestTestEnv(t)
	ctx := context.Background()
	created := env.createRequest(t, dto.CreateRequestDTO{})

	_, err := env.service.UpdateRequest(ctx, created.ID, dto.UpdateRequestDTO{
		Priority: null.StringFrom("Bogus"),
	})
	assert.ErrorAs(t, err, new(*apperrors.InvalidInputError), "мусорный приоритет не сохраняется даже в обход HTTP-валидации")

	stored, err := env.requestRepo.Find(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.PriorityMedium, stored.Priority, "приоритет не изменился")

	updated, err := env.service.UpdateRequest(ctx, created.ID, dto.UpdateRequestDTO{
		Priority: null.StringFrom(string(entities.PriorityHigh)),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.PriorityHigh, updated.Priority)
}

func TestGetRequests_FiltersAndOverdue(t *testing.T) {
	env := newRequestTestEnv(t)
	ctx := context.Background()

	first := env.createRequest(t, dto.CreateRequestDTO{})
	env.createRequest(t, dto.CreateRequestDTO{Description: "second issue"})

	// Сдвигаем часы сервиса на трое суток вперёд: корректирующие
	// заявки должны стать просроченными.
	env.service.now = func() time.Time { return time.Now().Add(72 * time.Hour) }

	all, total, err := env.service.GetRequests(ctx, dto.RequestFilterDTO{})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	for _, item := range all {
		assert.True(t, item.Overdue, "корректирующая заявка старше 48 часов просрочена")
		assert.Equal(t, env.equipment.Name, item.EquipmentName)
		assert.Equal(t, env.technician.Name, item.TechnicianName)
	}

	filtered, _, err := env.service.GetRequests(ctx, dto.RequestFilterDTO{Stage: "In Progress"})
	require.NoError(t, err)
	assert.Empty(t, filtered, "по стадии In Progress заявок нет")

	_, err = env.service.TransitionRequest(ctx, first.ID, dto.TransitionRequestDTO{Stage: "In Progress"})
	require.NoError(t, err)

	filtered, _, err = env.service.GetRequests(ctx, dto.RequestFilterDTO{Stage: "In Progress"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, first.ID, filtered[0].ID)
}

func TestTechnicianStats(t *testing.T) {
	env := newRequestTestEnv(t)
	ctx := context.Background()

	pending := env.createRequest(t, dto.CreateRequestDTO{})
	inProgress := env.createRequest(t, dto.CreateRequestDTO{Description: "issue 2"})
	done := env.createRequest(t, dto.CreateRequestDTO{Description: "issue 3"})

	_, err := env.service.TransitionRequest(ctx, inProgress.ID, dto.TransitionRequestDTO{Stage: "In Progress"})
	require.NoError(t, err)
	_, err = env.service.TransitionRequest(ctx, done.ID, dto.TransitionRequestDTO{
		Stage: "Repaired", Duration: null.Float64From(1),
	})
	require.NoError(t, err)
	_ = pending

	stats, err := env.service.TechnicianStats(ctx, env.technician.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.PendingCount, "New и In Progress считаются ожидающими")
	assert.Equal(t, 1, stats.CompletedCount)
	assert.Equal(t, 0, stats.ScrapCount)

	stats, err = env.service.TechnicianStats(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, stats.PendingCount+stats.CompletedCount+stats.ScrapCount, "чужие заявки не учитываются")
}
