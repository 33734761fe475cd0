package entities

import (
	"github.com/volatiletech/null/v8"
	"gorm.io/datatypes"

	"swea-cms.backend/internal/domain/i18n"
)

// Research is a published research item.
type Research struct {
	Base
	Title            i18n.Text      `gorm:"type:json;not null" json:"title"`
	Author           i18n.Text      `gorm:"type:json;not null" json:"author"`
	DateOfCompletion null.Time      `gorm:"type:date" json:"dateOfCompletion"`
	Content          datatypes.JSON `gorm:"type:json" json:"content"`
	Tags             i18n.Tags      `gorm:"type:json;not null" json:"tags"`
	HeroImage        null.String    `gorm:"type:varchar(255)" json:"heroImage"`
	Images           datatypes.JSON `gorm:"type:json" json:"images"`
	Testimonials     datatypes.JSON `gorm:"type:json" json:"testimonials"`
}

func (Research) TableName() string { return "research" }
