package entities

// MemberDTO is a projection of Member carrying only username and age. It is
// not persisted. The setters and constructor exist so all three query
// binding strategies apply to it.
type MemberDTO struct {
	Username string
	Age      int
}

// NewMemberDTO constructs the projection directly.
func NewMemberDTO(username string, age int) MemberDTO {
	return MemberDTO{Username: username, Age: age}
}

// SetUsername assigns the username. Used by setter binding.
func (d *MemberDTO) SetUsername(username string) { d.Username = username }

// SetAge assigns the age. Used by setter binding.
func (d *MemberDTO) SetAge(age int) { d.Age = age }

// TeamAgeStat is the group-by projection of a team name and the average age
// of its members.
type TeamAgeStat struct {
	TeamName   string
	AverageAge float64
}
