package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/als904204/go-querydsl/internal/entities"
	"github.com/als904204/go-querydsl/query"
)

// members is the query-builder row for the members table.
type members struct {
	ID       int64          `q:"members.id"`
	Username sql.NullString `q:"members.username"`
	Age      int            `q:"members.age"`
	TeamID   sql.NullInt64  `q:"members.team_id"`
}

// entity converts a row to the persistent entity.
func (r members) entity() entities.Member {
	m := entities.Member{ID: r.ID, Age: r.Age}
	if r.Username.Valid {
		username := r.Username.String
		m.Username = &username
	}
	if r.TeamID.Valid {
		teamID := r.TeamID.Int64
		m.TeamID = &teamID
	}
	return m
}

// memberProjection selects only the DTO columns. Username is non-null in the
// demo fixture.
type memberProjection struct {
	Username string `q:"members.username"`
	Age      int    `q:"members.age"`
}

// CreateMember persists a member through the ORM. The identifier is
// generated by the storage engine.
func (s *Store) CreateMember(ctx context.Context, m *entities.Member) error {
	return s.db.WithContext(ctx).Create(m).Error
}

// MemberByUsername returns the member with the given username.
func (s *Store) MemberByUsername(ctx context.Context, username string) (*entities.Member, error) {
	q := query.From[members]().Where("members.username = ?", username)
	row, err := query.One(ctx, s.qdb, q, query.Identity[members])
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entities.ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("member by username: %w", err)
	}
	m := row.entity()
	return &m, nil
}

// MemberByUsernameAndAge returns the member matching both conditions.
func (s *Store) MemberByUsernameAndAge(ctx context.Context, username string, age int) (*entities.Member, error) {
	q := query.From[members]().
		Where("members.username = ?", username).
		Where("members.age = ?", age)
	row, err := query.One(ctx, s.qdb, q, query.Identity[members])
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entities.ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("member by username and age: %w", err)
	}
	m := row.entity()
	return &m, nil
}

// MembersAged returns members of the given age ordered by age descending
// then username ascending with null usernames last.
func (s *Store) MembersAged(ctx context.Context, age int) ([]entities.Member, error) {
	q := query.From[members]().
		Where("members.age = ?", age).
		OrderBy("members.age DESC", "members.username ASC NULLS LAST")
	return query.All(ctx, s.qdb, q, members.entity)
}

// Members returns a page of members ordered by username descending. A
// negative limit or offset leaves the respective clause out.
func (s *Store) Members(ctx context.Context, limit, offset int64) ([]entities.Member, error) {
	q := query.From[members]().OrderBy("members.username DESC")
	if limit >= 0 {
		q.Limit(limit)
	}
	if offset >= 0 {
		q.Offset(offset)
	}
	return query.All(ctx, s.qdb, q, members.entity)
}

// CountMembers returns the total number of members.
func (s *Store) CountMembers(ctx context.Context) (int64, error) {
	return query.Count(ctx, s.qdb, query.From[members]())
}

// TeamAverageAges returns each team's name with the average age of its
// members, ordered by team name.
func (s *Store) TeamAverageAges(ctx context.Context) ([]entities.TeamAgeStat, error) {
	type teamAges struct {
		Name string  `q:"teams.name"`
		Avg  float64 `q:"AVG(members.age)"`
	}
	q := query.From[teamAges]().
		Table("members").
		Join("teams", "members.team_id = teams.id").
		GroupBy("teams.name").
		OrderBy("teams.name ASC")
	return query.All(ctx, s.qdb, q, func(r teamAges) entities.TeamAgeStat {
		return entities.TeamAgeStat{TeamName: r.Name, AverageAge: r.Avg}
	})
}

// MembersOfTeam returns members of the named team ordered by username.
func (s *Store) MembersOfTeam(ctx context.Context, teamName string) ([]entities.Member, error) {
	q := query.From[members]().
		Join("teams", "members.team_id = teams.id").
		Where("teams.name = ?", teamName).
		OrderBy("members.username ASC")
	return query.All(ctx, s.qdb, q, members.entity)
}

// MemberWithTeam pairs a member with an optional team name from an outer
// join.
type MemberWithTeam struct {
	Member   entities.Member
	TeamName *string
}

// MembersWithTeam returns every member; the team name is attached only when
// the member belongs to the named team.
func (s *Store) MembersWithTeam(ctx context.Context, teamName string) ([]MemberWithTeam, error) {
	type memberTeams struct {
		ID       int64          `q:"members.id"`
		Username sql.NullString `q:"members.username"`
		Age      int            `q:"members.age"`
		TeamName sql.NullString `q:"teams.name"`
	}
	q := query.From[memberTeams]().
		Table("members").
		LeftJoin("teams", "members.team_id = teams.id AND teams.name = ?", teamName).
		OrderBy("members.username ASC")
	return query.All(ctx, s.qdb, q, func(r memberTeams) MemberWithTeam {
		row := members{ID: r.ID, Username: r.Username, Age: r.Age}
		out := MemberWithTeam{Member: row.entity()}
		if r.TeamName.Valid {
			name := r.TeamName.String
			out.TeamName = &name
		}
		return out
	})
}

// MemberUsernames returns the single-column username projection.
func (s *Store) MemberUsernames(ctx context.Context) ([]string, error) {
	q := query.From[memberProjection]().Table("members").OrderBy("members.username ASC")
	return query.All(ctx, s.qdb, q, func(r memberProjection) string { return r.Username })
}

// MemberDTOsByFields projects members into DTOs with field binding.
func (s *Store) MemberDTOsByFields(ctx context.Context) ([]entities.MemberDTO, error) {
	q := query.From[memberProjection]().Table("members").OrderBy("members.username ASC")
	return query.All(ctx, s.qdb, q, query.Fields[memberProjection, entities.MemberDTO])
}

// MemberDTOsBySetters projects members into DTOs with setter binding.
func (s *Store) MemberDTOsBySetters(ctx context.Context) ([]entities.MemberDTO, error) {
	q := query.From[memberProjection]().Table("members").OrderBy("members.username ASC")
	return query.All(ctx, s.qdb, q, query.Setters[memberProjection, entities.MemberDTO])
}

// MemberDTOsByConstructor projects members into DTOs through the DTO
// constructor.
func (s *Store) MemberDTOsByConstructor(ctx context.Context) ([]entities.MemberDTO, error) {
	q := query.From[memberProjection]().Table("members").OrderBy("members.username ASC")
	return query.All(ctx, s.qdb, q, func(r memberProjection) entities.MemberDTO {
		return entities.NewMemberDTO(r.Username, r.Age)
	})
}
