package dto

import "time"

// RequestReportItem — строка отчёта по заявкам (JSON и xlsx-экспорт).
type RequestReportItem struct {
	RequestID     string     `json:"request_id"`
	EquipmentName string     `json:"equipment_name"`
	SerialNumber  string     `json:"serial_number"`
	Type          string     `json:"type"`
	Priority      string     `json:"priority"`
	Stage         string     `json:"stage"`
	Technician    string     `json:"technician"`
	Team          string     `json:"team"`
	ReportedBy    string     `json:"reported_by"`
	CreatedAt     time.Time  `json:"created_at"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	DurationHours float64    `json:"duration_hours"`
	Overdue       bool       `json:"overdue"`
}
