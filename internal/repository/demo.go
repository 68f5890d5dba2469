package repository

import (
	"context"

	"github.com/als904204/go-querydsl/internal/entities"
	"github.com/als904204/go-querydsl/query"
)

// CreateDemo persists an empty demo record and returns it with the generated
// identifier.
func (s *Store) CreateDemo(ctx context.Context) (*entities.Demo, error) {
	demo := &entities.Demo{}
	if err := s.db.WithContext(ctx).Create(demo).Error; err != nil {
		return nil, err
	}
	return demo, nil
}

// CountDemos returns the number of demo records.
func (s *Store) CountDemos(ctx context.Context) (int64, error) {
	type demos struct {
		ID int64 `q:"demos.id"`
	}
	return query.Count(ctx, s.qdb, query.From[demos]())
}
