package repository

import (
	"context"
	"errors"

	"github.com/als904204/go-querydsl/internal/entities"

	"gorm.io/gorm"
)

// CreateTeam persists a team through the ORM.
func (s *Store) CreateTeam(ctx context.Context, team *entities.Team) error {
	return s.db.WithContext(ctx).Create(team).Error
}

// TeamByName returns the named team with its members loaded.
func (s *Store) TeamByName(ctx context.Context, name string) (*entities.Team, error) {
	var team entities.Team
	err := s.db.WithContext(ctx).Preload("Members").Where("name = ?", name).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrTeamNotFound
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// Teams returns all teams ordered by name.
func (s *Store) Teams(ctx context.Context) ([]entities.Team, error) {
	var teams []entities.Team
	err := s.db.WithContext(ctx).Order("name ASC").Find(&teams).Error
	return teams, err
}
