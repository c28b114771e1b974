package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// Pages are read by (shop_id, created_at desc, id desc).
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ShopID    uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_shop_page,priority:1"`
	UserEmail string    `gorm:"type:varchar(320);not null"`
	Rating    int       `gorm:"not null;check:chk_reviews_rating,rating BETWEEN 1 AND 5"`
	Comment   string    `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time `gorm:"not null;index:idx_reviews_shop_page,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
