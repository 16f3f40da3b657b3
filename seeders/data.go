package seeders

import (
	"time"

	"gearguard/internal/entities"
	"gearguard/pkg/utils"
)

func date(year int, month time.Month, day int) *time.Time {
	return utils.ToPtr(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Демо-парк оборудования для первого запуска.
var equipmentData = []entities.Equipment{
	{
		ID:                "1",
		Name:              "CNC Milling Machine",
		SerialNumber:      "CNC-2023-001",
		Category:          entities.CategoryMachine,
		Department:        "Production",
		MaintenanceTeamID: utils.ToPtr("tm1"),
		TechnicianID:      utils.ToPtr("t1"),
		Status:            entities.StatusOperational,
		Location:          "Section A",
		PurchaseDate:      date(2023, time.January, 15),
		WarrantyEnd:       date(2025, time.January, 15),
	},
	{
		ID:                "2",
		Name:              "Forklift X500",
		SerialNumber:      "FL-X500-99",
		Category:          entities.CategoryVehicle,
		Department:        "Logistics",
		MaintenanceTeamID: utils.ToPtr("tm1"),
		TechnicianID:      utils.ToPtr("t2"),
		Status:            entities.StatusMaintenance,
		Location:          "Warehouse",
		PurchaseDate:      date(2022, time.June, 10),
		WarrantyEnd:       date(2024, time.June, 10),
	},
	{
		ID:                "3",
		Name:              "Design Workstation",
		SerialNumber:      "IT-WS-442",
		Category:          entities.CategoryComputer,
		Department:        "Design",
		EmployeeID:        utils.ToPtr("David Designer"),
		MaintenanceTeamID: utils.ToPtr("tm3"),
		TechnicianID:      utils.ToPtr("t4"),
		Status:            entities.StatusOperational,
		Location:          "Office 3",
		PurchaseDate:      date(2024, time.March, 1),
		WarrantyEnd:       date(2027, time.March, 1),
	},
}

var technicianData = []entities.Technician{
	{ID: "t1", Name: "Alice Johnson", Role: "Technician", TeamID: utils.ToPtr("tm1")},
	{ID: "t2", Name: "Bob Smith", Role: "Technician", TeamID: utils.ToPtr("tm1")},
	{ID: "t3", Name: "Charlie Davis", Role: "Technician", TeamID: utils.ToPtr("tm2")},
	{ID: "t4", Name: "Diana Prince", Role: "Technician", TeamID: utils.ToPtr("tm3")},
}

// Демо-профили: администратор и техник.
var userData = []entities.UserProfile{
	{
		UserID:      "u1",
		DisplayName: "Admin",
		Email:       "admin@gearguard.local",
		Role:        entities.RoleAdmin,
		Permissions: map[entities.Resource]entities.AccessLevel{
			entities.ResourceEquipment: entities.AccessWrite,
			entities.ResourceRequests:  entities.AccessWrite,
			entities.ResourceUsers:     entities.AccessWrite,
		},
	},
	{
		UserID:      "u2",
		DisplayName: "Alice Johnson",
		Email:       "alice@gearguard.local",
		Role:        entities.RoleTechnician,
		Permissions: map[entities.Resource]entities.AccessLevel{
			entities.ResourceEquipment: entities.AccessRead,
			entities.ResourceRequests:  entities.AccessWrite,
			entities.ResourceUsers:     entities.AccessRead,
		},
	},
}
