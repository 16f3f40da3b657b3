package dto

import "github.com/aarondl/null/v8"

// SessionDTO — полезная нагрузка identity-провайдера на старте сессии.
type SessionDTO struct {
	ExternalUserID string `json:"external_user_id" validate:"required"`
	DisplayName    string `json:"display_name"`
	Email          string `json:"email" validate:"omitempty,email"`
}

type SessionResultDTO struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	Profile      interface{} `json:"profile"`
}

type UpdateProfileDTO struct {
	Address null.String `json:"address"`
	Phone   null.String `json:"phone"`
}

// SetPermissionDTO — переключение уровня доступа пользователя к ресурсу.
type SetPermissionDTO struct {
	Resource string `json:"resource" validate:"required,oneof=equipment requests users"`
	Level    string `json:"level" validate:"required,access_level"`
}
