package entities

import (
	"github.com/volatiletech/null/v8"
	"gorm.io/datatypes"

	"swea-cms.backend/internal/domain/i18n"
)

// Team is a team member shown on the about page. Order is a dense 1..N
// sequence over active members; the repository keeps it gap-free on every
// insert, move and delete.
type Team struct {
	Base
	Name    i18n.Text         `gorm:"type:json;not null" json:"name"`
	Order   int               `gorm:"column:order;not null;default:1" json:"order"`
	Role    i18n.Text         `gorm:"type:json;not null" json:"role"`
	Bio     i18n.Text         `gorm:"type:json;not null" json:"bio"`
	Socials datatypes.JSONMap `gorm:"type:json" json:"socials"`
	Image   null.String       `gorm:"type:varchar(255)" json:"image"`
	Email   null.String       `gorm:"type:varchar(255)" json:"email"`
}

func (Team) TableName() string { return "teams" }
