package dto

// DashboardDTO — агрегаты для главного экрана.
type DashboardDTO struct {
	TotalEquipment  int            `json:"total_equipment"`
	ActiveRequests  int            `json:"active_requests"`
	CriticalIssues  int            `json:"critical_issues"`
	CompletedJobs   int            `json:"completed_jobs"`
	EquipmentStatus map[string]int `json:"equipment_status"`
}
