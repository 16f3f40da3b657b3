package entities

import "time"

type RequestType string

const (
	TypeCorrective RequestType = "Corrective"
	TypePreventive RequestType = "Preventive"
)

type RequestPriority string

const (
	PriorityLow      RequestPriority = "Low"
	PriorityMedium   RequestPriority = "Medium"
	PriorityHigh     RequestPriority = "High"
	PriorityCritical RequestPriority = "Critical"
)

func (p RequestPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type RequestStage string

const (
	StageNew        RequestStage = "New"
	StageInProgress RequestStage = "In Progress"
	StageRepaired   RequestStage = "Repaired"
	StageScrap      RequestStage = "Scrap"
)

// stageTransitions — допустимые переходы стадий.
// Repaired и Scrap терминальны: выходов из них нет.
var stageTransitions = map[RequestStage][]RequestStage{
	StageNew:        {StageInProgress, StageRepaired, StageScrap},
	StageInProgress: {StageRepaired, StageScrap, StageNew},
}

// CanTransition сообщает, разрешён ли переход from -> to.
func CanTransition(from, to RequestStage) bool {
	for _, allowed := range stageTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal сообщает, что стадия конечная.
func (s RequestStage) IsTerminal() bool {
	return s == StageRepaired || s == StageScrap
}

func (s RequestStage) Valid() bool {
	switch s {
	case StageNew, StageInProgress, StageRepaired, StageScrap:
		return true
	}
	return false
}

type Request struct {
	ID            string          `json:"id"`
	EquipmentID   string          `json:"equipment_id"`
	Type          RequestType     `json:"type"`
	Description   string          `json:"description"`
	Priority      RequestPriority `json:"priority"`
	AssignedTo    *string         `json:"assigned_to,omitempty"`
	TeamID        *string         `json:"team_id,omitempty"`
	ReportedBy    string          `json:"reported_by"`
	ScheduledDate *time.Time      `json:"scheduled_date,omitempty"`
	Stage         RequestStage    `json:"stage"`
	DurationHours float64         `json:"duration_hours"`
	CreatedAt     time.Time       `json:"created_at"`
}
