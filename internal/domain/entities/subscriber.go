package entities

// Subscriber is a newsletter subscriber. Email is unique across active and
// soft-deleted rows; duplicate signups surface as a conflict.
type Subscriber struct {
	Base
	Email string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
}

func (Subscriber) TableName() string { return "subscribers" }
