package entity

// Role represents a grantable role in the system. Roles are first-class rows
// rather than an inline enum so a user can hold several at once through the
// user_roles join table.
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"many2many:user_roles" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants (seeded by migrations)
const (
	RoleIDUser      = 1
	RoleIDLibrarian = 2
	RoleIDAdmin     = 3
)

// Role name constants
const (
	RoleUser      = "user"
	RoleLibrarian = "librarian"
	RoleAdmin     = "admin"
)
