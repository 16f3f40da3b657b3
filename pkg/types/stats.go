package types

// TechnicianRequestStats — сводка по заявкам одного техника:
// pending = New + In Progress, completed = Repaired, scrap = Scrap.
type TechnicianRequestStats struct {
	PendingCount   int `json:"pending_count"`
	CompletedCount int `json:"completed_count"`
	ScrapCount     int `json:"scrap_count"`
}
