package authz

import "gearguard/internal/entities"

type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

// HasPermission вычисляет эффективное право пользователя на пару ресурс/действие.
// Роль Admin даёт полный доступ независимо от явной карты прав. Для остальных:
// любая запись по ресурсу разрешает чтение, запись — только уровень write.
// Отсутствие профиля или записи по ресурсу — отказ (fail closed).
func HasPermission(profile *entities.UserProfile, resource entities.Resource, action Action) bool {
	if profile == nil {
		return false
	}
	if profile.Role == entities.RoleAdmin {
		return true
	}

	level, ok := profile.Permissions[resource]
	if !ok || level == entities.AccessNone {
		return false
	}
	if action == ActionRead {
		return true
	}
	return level == entities.AccessWrite
}
