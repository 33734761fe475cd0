package entities

import (
	"github.com/volatiletech/null/v8"

	"swea-cms.backend/internal/domain/i18n"
)

// Podcast is a podcast episode, optionally linked to participating members.
type Podcast struct {
	Base
	Title       i18n.Text   `gorm:"type:json;not null" json:"title"`
	PodcastName i18n.Text   `gorm:"type:json;not null" json:"podcastName"`
	Date        null.Time   `gorm:"type:date" json:"date"`
	Description i18n.Text   `gorm:"type:json;not null" json:"description"`
	URL         null.String `gorm:"type:varchar(255)" json:"url"`
	Tags        i18n.Tags   `gorm:"type:json;not null" json:"tags"`
	Image       null.String `gorm:"type:varchar(255)" json:"image"`
	Members     []Member    `gorm:"many2many:podcast_members;constraint:OnDelete:CASCADE" json:"members,omitempty"`
}

func (Podcast) TableName() string { return "podcasts" }
