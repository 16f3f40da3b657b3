package dto

import "github.com/aarondl/null/v8"

type CreateTechnicianDTO struct {
	Name   string  `json:"name" validate:"required"`
	Role   string  `json:"role"`
	TeamID *string `json:"team_id"`
}

type UpdateTechnicianDTO struct {
	Name   null.String `json:"name"`
	Role   null.String `json:"role"`
	TeamID null.String `json:"team_id"`
}
