// Package entity contains the core business objects of the shop directory.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Shop is a vendor's listing.
type Shop struct {
	ID            uuid.UUID `json:"id"`
	VendorEmail   string    `json:"vendorEmail"` // Owner reference, compared by exact equality.
	Name          string    `json:"name"`
	Products      string    `json:"products"`
	Description   string    `json:"description"`
	Timings       string    `json:"timings"`
	Address       string    `json:"address"`
	Number        string    `json:"number"`
	Lat           *float64  `json:"lat"`
	Lng           *float64  `json:"lng"`
	AverageRating float64   `json:"averageRating"`
	RatingsCount  int       `json:"ratingsCount"`
	Approved      bool      `json:"approved"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// HasLocation reports whether both coordinates are set.
func (s *Shop) HasLocation() bool {
	return s.Lat != nil && s.Lng != nil
}

// Location returns the shop position as an orb point (lng, lat).
func (s *Shop) Location() (orb.Point, bool) {
	if !s.HasLocation() {
		return orb.Point{}, false
	}

	return orb.Point{*s.Lng, *s.Lat}, true
}

// SetLocation stores the point's coordinates on the shop.
func (s *Shop) SetLocation(p orb.Point) {
	lat, lng := p.Lat(), p.Lon()
	s.Lat = &lat
	s.Lng = &lng
}

// OwnedBy reports whether email is the vendor of this shop.
func (s *Shop) OwnedBy(email string) bool {
	return email != "" && s.VendorEmail == email
}

// RatingSummary is the running aggregate over a shop's reviews.
type RatingSummary struct {
	AverageRating float64 `json:"averageRating"`
	RatingsCount  int     `json:"ratingsCount"`
}

// Summary returns the shop's current aggregate.
func (s *Shop) Summary() RatingSummary {
	return RatingSummary{AverageRating: s.AverageRating, RatingsCount: s.RatingsCount}
}

// ShopFilter narrows a shop listing. Zero value matches all shops.
type ShopFilter struct {
	VendorEmail string
}
