package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

type CreateEquipmentDTO struct {
	Name              string     `json:"name" validate:"required"`
	SerialNumber      string     `json:"serial_number" validate:"required"`
	Category          string     `json:"category" validate:"required,equipment_category"`
	Department        string     `json:"department"`
	EmployeeID        *string    `json:"employee_id"`
	MaintenanceTeamID *string    `json:"maintenance_team_id"`
	TechnicianID      *string    `json:"technician_id"`
	Status            string     `json:"status" validate:"omitempty,equipment_status"`
	Location          string     `json:"location"`
	PurchaseDate      *time.Time `json:"purchase_date"`
	WarrantyEnd       *time.Time `json:"warranty_end"`
}

// UpdateEquipmentDTO — частичное обновление: null-типы отличают
// "поле не передано" от переданного нулевого значения.
type UpdateEquipmentDTO struct {
	Name              null.String `json:"name"`
	SerialNumber      null.String `json:"serial_number"`
	Category          null.String `json:"category" validate:"omitempty,equipment_category"`
	Department        null.String `json:"department"`
	EmployeeID        null.String `json:"employee_id"`
	MaintenanceTeamID null.String `json:"maintenance_team_id"`
	TechnicianID      null.String `json:"technician_id"`
	Status            null.String `json:"status" validate:"omitempty,equipment_status"`
	Location          null.String `json:"location"`
	PurchaseDate      null.Time   `json:"purchase_date"`
	WarrantyEnd       null.Time   `json:"warranty_end"`
	IsScrapped        null.Bool   `json:"is_scrapped"`
}

// DeleteEquipmentResultDTO — результат удаления с предупреждением о
// висящих открытых заявках на это оборудование.
type DeleteEquipmentResultDTO struct {
	OpenRequests int `json:"open_requests"`
}
