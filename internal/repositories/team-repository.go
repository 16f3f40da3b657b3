package repositories

import (
	"context"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

// Команды — фиксированный справочник без CRUD и без персистентности.
var referenceTeams = []entities.Team{
	{ID: "tm1", Name: "Mechanics"},
	{ID: "tm2", Name: "Electricians"},
	{ID: "tm3", Name: "IT Support"},
}

type TeamRepositoryInterface interface {
	List(ctx context.Context) ([]entities.Team, error)
	Find(ctx context.Context, id string) (*entities.Team, error)
}

type TeamRepository struct{}

func NewTeamRepository() TeamRepositoryInterface {
	return &TeamRepository{}
}

func (r *TeamRepository) List(_ context.Context) ([]entities.Team, error) {
	out := make([]entities.Team, len(referenceTeams))
	copy(out, referenceTeams)
	return out, nil
}

func (r *TeamRepository) Find(_ context.Context, id string) (*entities.Team, error) {
	for i := range referenceTeams {
		if referenceTeams[i].ID == id {
			team := referenceTeams[i]
			return &team, nil
		}
	}
	return nil, apperrors.ErrNotFound
}
