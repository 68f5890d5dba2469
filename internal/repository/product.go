package repository

import (
	"context"
	"errors"

	"github.com/als904204/go-querydsl/internal/entities"
	"github.com/als904204/go-querydsl/query"

	"gorm.io/gorm"
)

// products is the query-builder row for the products table.
type products struct {
	ID    int64  `q:"products.id"`
	Name  string `q:"products.name"`
	Price int64  `q:"products.price"`
}

// CreateProduct persists a product through the ORM.
func (s *Store) CreateProduct(ctx context.Context, p *entities.Product) error {
	return s.db.WithContext(ctx).Create(p).Error
}

// ProductByID returns the product with the given identifier.
func (s *Store) ProductByID(ctx context.Context, id int64) (*entities.Product, error) {
	var p entities.Product
	err := s.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Products returns a page of products ordered by price descending. A
// negative limit or offset leaves the respective clause out.
func (s *Store) Products(ctx context.Context, limit, offset int64) ([]entities.Product, error) {
	q := query.From[products]().OrderBy("products.price DESC")
	if limit >= 0 {
		q.Limit(limit)
	}
	if offset >= 0 {
		q.Offset(offset)
	}
	return query.All(ctx, s.qdb, q, func(r products) entities.Product {
		return entities.Product{ID: r.ID, Name: r.Name, Price: r.Price}
	})
}

// ProductsCheaperThan returns products below the given price, cheapest first.
func (s *Store) ProductsCheaperThan(ctx context.Context, price int64) ([]entities.Product, error) {
	q := query.From[products]().
		Where("products.price < ?", price).
		OrderBy("products.price ASC")
	return query.All(ctx, s.qdb, q, func(r products) entities.Product {
		return entities.Product{ID: r.ID, Name: r.Name, Price: r.Price}
	})
}
