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
)

func newUserService(t *testing.T) UserServiceInterface {
	t.Helper()
	userRepo, err := repositories.NewUserRepository(context.Background(), storage.NewMemoryStorage())
	require.NoError(t, err)
	return NewUserService(userRepo, zap.NewNop())
}

func TestResolveSession_ProvisionsTechnicianByDefault(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	profile, err := svc.ResolveSession(ctx, dto.SessionDTO{
		ExternalUserID: "ext-1",
		DisplayName:    "Alice Johnson",
		Email:          "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.RoleTechnician, profile.Role)
	assert.Equal(t, entities.AccessRead, profile.Permissions[entities.ResourceEquipment])
	assert.Equal(t, entities.AccessWrite, profile.Permissions[entities.ResourceRequests])
	assert.Equal(t, entities.AccessRead, profile.Permissions[entities.ResourceUsers])
}

func TestResolveSession_AdminByEmail(t *testing.T) {
	svc := newUserService(t)

	profile, err := svc.ResolveSession(context.Background(), dto.SessionDTO{
		ExternalUserID: "ext-2",
		Email:          "Site-Admin@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.RoleAdmin, profile.Role, "email с подстрокой admin даёт роль Admin без учёта регистра")
	assert.Equal(t, entities.AccessWrite, profile.Permissions[entities.ResourceUsers])
}

func TestResolveSession_SecondLoginReturnsExistingProfile(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	first, err := svc.ResolveSession(ctx, dto.SessionDTO{ExternalUserID: "ext-3", Email: "bob@example.com"})
	require.NoError(t, err)

	// Повторный вход с другим email не перетирает профиль.
	second, err := svc.ResolveSession(ctx, dto.SessionDTO{ExternalUserID: "ext-3", Email: "admin@example.com"})
	require.NoError(t, err)
	assert.Equal(t, first.Role, second.Role, "роль зафиксирована при первом входе")
	assert.Equal(t, first.Email, second.Email)
}

func TestUpdateProfileAndSetPermission(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	profile, err := svc.ResolveSession(ctx, dto.SessionDTO{ExternalUserID: "ext-4", Email: "carol@example.com"})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, profile.UserID, dto.UpdateProfileDTO{
		Address: null.StringFrom("Dushanbe, Rudaki 12"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Dushanbe, Rudaki 12", updated.Details.Address)
	assert.Empty(t, updated.Details.Phone, "нетронутые поля не меняются")

	granted, err := svc.SetPermission(ctx, profile.UserID, dto.SetPermissionDTO{
		Resource: "equipment",
		Level:    "write",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.AccessWrite, granted.Permissions[entities.ResourceEquipment])
}
