package dto

import (
	"time"

	"github.com/aarondl/null/v8"

	"gearguard/internal/entities"
)

type CreateRequestDTO struct {
	EquipmentID   string     `json:"equipment_id" validate:"required"`
	Type          string     `json:"type" validate:"required,request_type"`
	Description   string     `json:"description" validate:"required"`
	Priority      string     `json:"priority" validate:"omitempty,request_priority"`
	AssignedTo    *string    `json:"assigned_to"`
	TeamID        *string    `json:"team_id"`
	ReportedBy    string     `json:"reported_by"`
	ScheduledDate *time.Time `json:"scheduled_date" validate:"required_if=Type Preventive"`
}

// UpdateRequestDTO — частичное редактирование заявки. Поле Stage
// принимается только чтобы сервис мог явно отклонить попытку сменить
// стадию редактированием: её меняет операция перехода.
type UpdateRequestDTO struct {
	Description   null.String `json:"description"`
	Priority      null.String `json:"priority" validate:"omitempty,request_priority"`
	AssignedTo    null.String `json:"assigned_to"`
	TeamID        null.String `json:"team_id"`
	ReportedBy    null.String `json:"reported_by"`
	ScheduledDate null.Time   `json:"scheduled_date"`
	Stage         null.String `json:"stage"`
}

// TransitionRequestDTO — запрос на перевод стадии.
// Duration обязателен для Repaired, Confirm — для Scrap.
type TransitionRequestDTO struct {
	Stage    string       `json:"stage" validate:"required"`
	Duration null.Float64 `json:"duration"`
	Confirm  bool         `json:"confirm"`
}

// RequestFilterDTO — фильтры списка/канбана.
type RequestFilterDTO struct {
	EquipmentID string
	AssignedTo  string
	Stage       string
}

// RequestDTO — заявка в ответе API, дополненная вычисляемыми полями.
type RequestDTO struct {
	entities.Request
	Overdue        bool   `json:"overdue"`
	EquipmentName  string `json:"equipment_name,omitempty"`
	TechnicianName string `json:"technician_name,omitempty"`
}
