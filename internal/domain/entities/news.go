package entities

import (
	"github.com/volatiletech/null/v8"

	"swea-cms.backend/internal/domain/i18n"
)

// News is a published news item on the public site.
type News struct {
	Base
	Title       i18n.Text   `gorm:"type:json;not null" json:"title"`
	Date        null.Time   `gorm:"type:date" json:"date"`
	Image       null.String `gorm:"type:varchar(255)" json:"image"`
	Description i18n.Text   `gorm:"type:json;not null" json:"description"`
	URLRedirect null.String `gorm:"column:url_redirect;type:varchar(255)" json:"urlRedirect"`
}

func (News) TableName() string { return "news" }
