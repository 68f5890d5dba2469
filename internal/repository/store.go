// Package repository implements persistence for the sample entities. Writes
// go through the ORM; the read paths demonstrate the typed query builder
// layered on the same connection.
package repository

import (
	"fmt"

	"github.com/als904204/go-querydsl/config"
	"github.com/als904204/go-querydsl/internal/entities"
	"github.com/als904204/go-querydsl/query"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Store wraps the ORM handle and the query-builder view of the same
// connection.
type Store struct {
	db  *gorm.DB
	qdb *query.DB
	log *zap.SugaredLogger
}

// Open connects using the configured driver, migrates the entity schema and
// prepares the query-builder handle with the matching placeholder dialect.
func Open(cfg config.DatabaseConfig, log *zap.SugaredLogger) (*Store, error) {
	var dialector gorm.Dialector
	dialect := query.Question
	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DSN())
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
		dialect = query.Dollar
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap connection: %w", err)
	}
	if cfg.Driver == config.DriverSQLite {
		// Pooled connections to an in-memory SQLite database would each see
		// their own empty schema.
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(
		&entities.Demo{},
		&entities.Team{},
		&entities.Member{},
		&entities.Product{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	opts := &query.Options{Dialect: dialect}
	if log != nil {
		opts.Logger = func(stmt string, args []any) {
			log.Debugw("sql", "query", stmt, "args", args)
		}
	}

	return &Store{db: db, qdb: query.Wrap(sqlDB, opts), log: log}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Seed inserts the canonical demo fixture when the database is empty: teams
// teamA and teamB, four members, and a small product catalog.
func (s *Store) Seed() error {
	var count int64
	if err := s.db.Model(&entities.Team{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count teams: %w", err)
	}
	if count > 0 {
		return nil
	}

	teamA := &entities.Team{Name: "teamA"}
	teamB := &entities.Team{Name: "teamB"}
	for _, team := range []*entities.Team{teamA, teamB} {
		if err := s.db.Create(team).Error; err != nil {
			return fmt.Errorf("seed team: %w", err)
		}
	}

	members := []*entities.Member{
		entities.NewTeamMember("member1", 10, teamA),
		entities.NewTeamMember("member2", 20, teamA),
		entities.NewTeamMember("member3", 20, teamB),
		entities.NewTeamMember("member4", 20, teamB),
	}
	for _, m := range members {
		if err := s.db.Create(m).Error; err != nil {
			return fmt.Errorf("seed member: %w", err)
		}
	}

	products := []*entities.Product{
		{Name: "keyboard", Price: 45000},
		{Name: "mouse", Price: 20000},
		{Name: "monitor", Price: 350000},
	}
	for _, p := range products {
		if err := s.db.Create(p).Error; err != nil {
			return fmt.Errorf("seed product: %w", err)
		}
	}

	if s.log != nil {
		s.log.Infow("seeded demo fixture", "teams", 2, "members", len(members), "products", len(products))
	}
	return nil
}
