package model

import (
	"time"
)

// ShopDocument is the BSON shape of a document in the 'shops' collection.
type ShopDocument struct {
	ID            string    `bson:"_id"`
	VendorEmail   string    `bson:"vendorEmail"`
	Name          string    `bson:"name"`
	Products      string    `bson:"products"`
	Description   string    `bson:"description"`
	Timings       string    `bson:"timings"`
	Address       string    `bson:"address"`
	Number        string    `bson:"number"`
	Lat           *float64  `bson:"lat"`
	Lng           *float64  `bson:"lng"`
	AverageRating float64   `bson:"averageRating"`
	RatingsCount  int       `bson:"ratingsCount"`
	Approved      bool      `bson:"approved"`
	CreatedAt     time.Time `bson:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt"`
}

// ReviewDocument is the BSON shape of a document in the 'reviews' collection.
type ReviewDocument struct {
	ID        string    `bson:"_id"`
	ShopID    string    `bson:"shopId"`
	UserEmail string    `bson:"userEmail"`
	Rating    int       `bson:"rating"`
	Comment   string    `bson:"comment"`
	CreatedAt time.Time `bson:"createdAt"`
}
