package entities

// Team owns zero or more members.
type Team struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"size:64"`
	Members []Member `gorm:"foreignKey:TeamID"`
}
