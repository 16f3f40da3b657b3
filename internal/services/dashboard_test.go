package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/internal/storage"
)

func TestDashboard_GetStats(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemoryStorage()

	equipmentRepo, err := repositories.NewEquipmentRepository(ctx, st)
	require.NoError(t, err)
	requestRepo, err := repositories.NewRequestRepository(ctx, st)
	require.NoError(t, err)

	operational, err := equipmentRepo.Create(ctx, entities.Equipment{Name: "A", Status: entities.StatusOperational})
	require.NoError(t, err)
	_, err = equipmentRepo.Create(ctx, entities.Equipment{Name: "B", Status: entities.StatusDown})
	require.NoError(t, err)

	newReq, err := requestRepo.Create(ctx, entities.Request{EquipmentID: operational.ID, Type: entities.TypeCorrective, Priority: entities.PriorityCritical, Description: "x"})
	require.NoError(t, err)
	_ = newReq

	repaired, err := requestRepo.Create(ctx, entities.Request{EquipmentID: operational.ID, Type: entities.TypeCorrective, Priority: entities.PriorityLow, Description: "y"})
	require.NoError(t, err)
	repaired.Stage = entities.StageRepaired
	require.NoError(t, requestRepo.Update(ctx, repaired.ID, *repaired))

	scrap, err := requestRepo.Create(ctx, entities.Request{EquipmentID: operational.ID, Type: entities.TypeCorrective, Priority: entities.PriorityCritical, Description: "z"})
	require.NoError(t, err)
	scrap.Stage = entities.StageScrap
	require.NoError(t, requestRepo.Update(ctx, scrap.ID, *scrap))

	svc := NewDashboardService(equipmentRepo, requestRepo)
	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalEquipment)
	assert.Equal(t, 1, stats.EquipmentStatus[string(entities.StatusOperational)])
	assert.Equal(t, 1, stats.EquipmentStatus[string(entities.StatusDown)])
	assert.Equal(t, 1, stats.ActiveRequests, "терминальные заявки не активны")
	assert.Equal(t, 1, stats.CriticalIssues, "критичная в Scrap не считается открытой проблемой")
	assert.Equal(t, 1, stats.CompletedJobs)
}
