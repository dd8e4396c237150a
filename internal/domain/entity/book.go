package entity

import "time"

// DefaultBookImage is used when no cover image is provided.
const DefaultBookImage = "images/default.png"

// Book represents a title in the catalog. Inventory counts the physical
// copies currently on the shelf; it is only ever changed through atomic
// relative updates so concurrent issues cannot overdraw it.
type Book struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(50);not null;index" json:"name"`
	Image     string    `gorm:"type:varchar(255);not null;default:'images/default.png'" json:"image"`
	Publisher string    `gorm:"type:varchar(50);not null" json:"publisher"`
	Inventory int       `gorm:"not null;default:0" json:"inventory"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Authors []Author `gorm:"many2many:book_authors" json:"authors,omitempty"`
}

func (Book) TableName() string {
	return "books"
}

// IsAvailable reports whether at least one copy is on the shelf.
func (b *Book) IsAvailable() bool {
	return b.Inventory > 0
}
