package entity

// Author represents a book author managed by librarians.
type Author struct {
	ID     int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"type:varchar(30);not null;index" json:"name"`
	Gender string `gorm:"type:char(1);not null;default:'M'" json:"gender"`
	Email  string `gorm:"type:varchar(50);uniqueIndex;not null" json:"email"`

	// Relationships
	Books []Book `gorm:"many2many:book_authors" json:"books,omitempty"`
}

func (Author) TableName() string {
	return "authors"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)
