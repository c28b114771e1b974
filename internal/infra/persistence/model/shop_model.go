package model

import (
	"time"

	"github.com/google/uuid"
)

// ShopModel is the GORM-specific struct for the 'shops' table.
type ShopModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	VendorEmail   string    `gorm:"type:varchar(320);not null;index"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Products      string    `gorm:"type:text;not null"`
	Description   string    `gorm:"type:text;not null;default:''"`
	Timings       string    `gorm:"type:varchar(255);not null;default:''"`
	Address       string    `gorm:"type:text;not null"`
	Number        string    `gorm:"type:varchar(64);not null"`
	Lat           *float64  `gorm:"type:double precision"`
	Lng           *float64  `gorm:"type:double precision"`
	AverageRating float64   `gorm:"type:double precision;not null;default:0"`
	RatingsCount  int       `gorm:"not null;default:0"`
	Approved      bool      `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null;index"`
	UpdatedAt     time.Time `gorm:"not null"`

	Reviews []ReviewModel `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}
