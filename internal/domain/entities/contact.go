package entities

// Contact is a message sent through the public contact form.
type Contact struct {
	Base
	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	Email   string `gorm:"type:varchar(255);not null" json:"email"`
	Content string `gorm:"type:text;not null" json:"content"`
}

func (Contact) TableName() string { return "contacts" }
