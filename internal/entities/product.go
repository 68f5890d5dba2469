package entities

// Product is a standalone catalog entity with no relationships.
type Product struct {
	ID    int64 `gorm:"primaryKey;autoIncrement"`
	Name  string
	Price int64
}
