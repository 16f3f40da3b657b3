package services

import (
	"context"
	"testing"

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

func newEquipmentService(t *testing.T) (EquipmentServiceInterface, repositories.EquipmentRepositoryInterface, repositories.RequestRepositoryInterface) {
	t.Helper()
	ctx := context.Background()
	st := storage.NewMemoryStorage()

	equipmentRepo, err := repositories.NewEquipmentRepository(ctx, st)
	require.NoError(t, err)
	requestRepo, err := repositories.NewRequestRepository(ctx, st)
	require.NoError(t, err)
	teamRepo := repositories.NewTeamRepository()

	return NewEquipmentService(equipmentRepo, requestRepo, teamRepo, zap.NewNop()), equipmentRepo, requestRepo
}

func TestCreateEquipment_Defaults(t *testing.T) {
	svc, _, _ := newEquipmentService(t)
	ctx := context.Background()

	created, err := svc.CreateEquipment(ctx, dto.CreateEquipmentDTO{
		Name:         "Forklift X500",
		SerialNumber: "FL-X500-99",
		Category:     "Vehicle",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusOperational, created.Status, "статус по умолчанию — Operational")
	assert.False(t, created.IsScrapped)
	assert.NotEmpty(t, created.ID)
}

func TestCreateEquipment_UnknownTeamRejected(t *testing.T) {
	svc, _, _ := newEquipmentService(t)
	unknown := "tm99"

	_, err := svc.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{
		Name:              "Press",
		SerialNumber:      "PR-1",
		Category:          "Machine",
		MaintenanceTeamID: &unknown,
	})
	assert.ErrorAs(t, err, new(*apperrors.InvalidInputError))
}

func TestGetEquipments_ScrappedHiddenByDefault(t *testing.T) {
	svc, equipmentRepo, _ := newEquipmentService(t)
	ctx := context.Background()

	alive, err := svc.CreateEquipment(ctx, dto.CreateEquipmentDTO{Name: "A", SerialNumber: "1", Category: "Machine"})
	require.NoError(t, err)
	dead, err := svc.CreateEquipment(ctx, dto.CreateEquipmentDTO{Name: "B", SerialNumber: "2", Category: "Machine"})
	require.NoError(t, err)

	scrapped := *dead
	scrapped.IsScrapped = true
	require.NoError(t, equipmentRepo.Update(ctx, dead.ID, scrapped))

	visible, total, err := svc.GetEquipments(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	require.Len(t, visible, 1)
	assert.Equal(t, alive.ID, visible[0].ID)

	all, total, err := svc.GetEquipments(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	assert.Len(t, all, 2)
}

func TestUpdateEquipment_ScrapForcesDownStatus(t *testing.T) {
	svc, _, _ := newEquipmentService(t)
	ctx := context.Background()

	created, err := svc.CreateEquipment(ctx, dto.CreateEquipmentDTO{Name: "A", SerialNumber: "1", Category: "Machine"})
	require.NoError(t, err)

	updated, err := svc.UpdateEquipment(ctx, created.ID, dto.UpdateEquipmentDTO{
		IsScrapped: null.BoolFrom(true),
		Status:     null.StringFrom(string(entities.StatusOperational)),
	})
	require.NoError(t, err)
	assert.True(t, updated.IsScrapped)
	assert.Equal(t, entities.StatusDown, updated.Status, "списанное оборудование всегда Down, даже если передан другой статус")
}

func TestUpdateEquipment_UnknownEnumsRejected(t *testing.T) {
	svc, _, _ := newEquipmentService(t)
	ctx := context.Background()

	created, err := svc.CreateEquipment(ctx, dto.CreateEquipmentDTO{Name: "A", SerialNumber: "1", Category: "Machine"})
	require.NoError(t, err)

	_, err = svc.UpdateEquipment(ctx, created.ID, dto.UpdateEquipmentDTO{
		Category: null.StringFrom("Appliance"),
	})
	assert.ErrorAs(t, err, new(*apperrors.InvalidInputError), "мусорная категория отклоняется на уровне сервиса")

	_, err = svc.UpdateEquipment(ctx, created.ID, dto.UpdateEquipmentDTO{
		Status: null.StringFrom("Broken"),
	})
	assert.ErrorAs(t, err, new(*apperrors.InvalidInputError), "мусорный статус отклоняется на уровне сервиса")

	updated, err := svc.UpdateEquipment(ctx, created.ID, dto.UpdateEquipmentDTO{
		Category: null.StringFrom(string(entities.CategoryVehicle)),
		Status:   null.StringFrom(string(entities.StatusMaintenance)),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.CategoryVehicle, updated.Category)
	assert.Equal(t, entities.StatusMaintenance, updated.Status)
}

func TestDeleteEquipment_ReportsOpenRequests(t *testing.T) {
	svc, _, requestRepo := newEquipmentService(t)
	ctx := context.Background()

	created, err := svc.CreateEquipment(ctx, dto.CreateEquipmentDTO{Name: "A", SerialNumber: "1", Category: "Machine"})
	require.NoError(t, err)

	_, err = requestRepo.Create(ctx, entities.Request{
		EquipmentID: created.ID, Type: entities.TypeCorrective, Description: "open one",
	})
	require.NoError(t, err)
	closed, err := requestRepo.Create(ctx, entities.Request{
		EquipmentID: created.ID, Type: entities.TypeCorrective, Description: "closed one",
	})
	require.NoError(t, err)
	closed.Stage = entities.StageRepaired
	require.NoError(t, requestRepo.Update(ctx, closed.ID, *closed))

	res, err := svc.DeleteEquipment(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, res.OpenRequests, "считаются только нетерминальные заявки")

	_, err = svc.FindEquipment(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "запись действительно удалена")
}
