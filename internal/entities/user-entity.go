package entities

type UserRole string

const (
	RoleAdmin      UserRole = "Admin"
	RoleTechnician UserRole = "Technician"
)

// AccessLevel — типизированный уровень доступа к ресурсу.
type AccessLevel string

const (
	AccessNone  AccessLevel = ""
	AccessRead  AccessLevel = "read"
	AccessWrite AccessLevel = "write"
)

type Resource string

const (
	ResourceEquipment Resource = "equipment"
	ResourceRequests  Resource = "requests"
	ResourceUsers     Resource = "users"
)

type UserDetails struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UserProfile — профиль пользователя, привязанный к внешнему
// идентификатору из identity-провайдера.
type UserProfile struct {
	UserID      string                   `json:"user_id"`
	DisplayName string                   `json:"display_name"`
	Email       string                   `json:"email"`
	Role        UserRole                 `json:"role"`
	Details     UserDetails              `json:"details"`
	Permissions map[Resource]AccessLevel `json:"permissions"`
}
