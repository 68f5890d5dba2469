// Package entities contains the persistent entities and projections.
package entities

// Member belongs to at most one team. Username is nullable in the schema.
type Member struct {
	ID       int64   `gorm:"primaryKey;autoIncrement"`
	Username *string `gorm:"size:64"`
	Age      int
	TeamID   *int64
	Team     *Team `gorm:"foreignKey:TeamID"`
}

// NewMember returns a member without a team. A nil username maps to NULL.
func NewMember(username *string, age int) *Member {
	return &Member{Username: username, Age: age}
}

// NewTeamMember returns a member owned by the supplied team.
func NewTeamMember(username string, age int, team *Team) *Member {
	return &Member{Username: &username, Age: age, TeamID: &team.ID}
}
