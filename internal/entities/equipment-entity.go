package entities

import "time"

type EquipmentCategory string

const (
	CategoryMachine  EquipmentCategory = "Machine"
	CategoryVehicle  EquipmentCategory = "Vehicle"
	CategoryComputer EquipmentCategory = "Computer"
	CategoryOther    EquipmentCategory = "Other"
)

func (c EquipmentCategory) Valid() bool {
	switch c {
	case CategoryMachine, CategoryVehicle, CategoryComputer, CategoryOther:
		return true
	}
	return false
}

type EquipmentStatus string

const (
	StatusOperational EquipmentStatus = "Operational"
	StatusDown        EquipmentStatus = "Down"
	StatusMaintenance EquipmentStatus = "Maintenance"
)

func (s EquipmentStatus) Valid() bool {
	switch s {
	case StatusOperational, StatusDown, StatusMaintenance:
		return true
	}
	return false
}

type Equipment struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	SerialNumber      string            `json:"serial_number"`
	Category          EquipmentCategory `json:"category"`
	Department        string            `json:"department"`
	EmployeeID        *string           `json:"employee_id,omitempty"`
	MaintenanceTeamID *string           `json:"maintenance_team_id,omitempty"`
	TechnicianID      *string           `json:"technician_id,omitempty"`
	Status            EquipmentStatus   `json:"status"`
	Location          string            `json:"location"`
	PurchaseDate      *time.Time        `json:"purchase_date,omitempty"`
	WarrantyEnd       *time.Time        `json:"warranty_end,omitempty"`
	IsScrapped        bool              `json:"is_scrapped"`
}
