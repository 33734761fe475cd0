package entities

import (
	"github.com/volatiletech/null/v8"

	"swea-cms.backend/internal/domain/i18n"
)

// Course is a training course, optionally linked to the members who ran it.
// The member set is replaced wholesale on every update.
type Course struct {
	Base
	Title       i18n.Text   `gorm:"type:json;not null" json:"title"`
	CourseName  i18n.Text   `gorm:"type:json;not null" json:"courseName"`
	Date        null.Time   `gorm:"type:date" json:"date"`
	Description i18n.Text   `gorm:"type:json;not null" json:"description"`
	URL         null.String `gorm:"type:varchar(255)" json:"url"`
	Tags        i18n.Tags   `gorm:"type:json;not null" json:"tags"`
	Image       null.String `gorm:"type:varchar(255)" json:"image"`
	Members     []Member    `gorm:"many2many:course_members;constraint:OnDelete:CASCADE" json:"members,omitempty"`
}

func (Course) TableName() string { return "courses" }
