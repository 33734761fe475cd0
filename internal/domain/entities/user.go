package entities

// User is a dashboard account. Passwords are stored as bcrypt hashes.
type User struct {
	Base
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	Role         string `gorm:"type:varchar(50);not null;default:editor" json:"role"`
}

func (User) TableName() string { return "users" }
