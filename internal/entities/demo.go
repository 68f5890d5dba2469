package entities

// Demo carries nothing but a generated identifier. It exists to show the
// minimal persistent entity.
type Demo struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`
}
