package entities

type Technician struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	TeamID *string `json:"team_id,omitempty"`
}

// Team — фиксированный справочник, не персистится (см. §6 спецификации).
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
