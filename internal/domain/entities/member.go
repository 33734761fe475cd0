package entities

import (
	"github.com/volatiletech/null/v8"

	"swea-cms.backend/internal/domain/i18n"
)

// Member is an organization member who can appear on courses and podcasts.
type Member struct {
	Base
	Name                 i18n.Text   `gorm:"type:json;not null" json:"name"`
	Email                string      `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Image                null.String `gorm:"type:varchar(255)" json:"image"`
	UniversityDepartment i18n.Text   `gorm:"type:json" json:"universityDepartment"`
}

func (Member) TableName() string { return "members" }
