package service

import (
	"context"

	"showmyshop/internal/domain/entity"
	"showmyshop/internal/errors"
)

// ErrNoGeocodeResult is returned when the provider has no match for a query.
var ErrNoGeocodeResult = errors.New("no geocoding result")

// Geocoder resolves free-text addresses to coordinates and back.
type Geocoder interface {
	// Forward resolves an address using the provider's first result.
	Forward(ctx context.Context, address string) (*entity.GeocodeResult, error)

	// Reverse resolves coordinates to a display address.
	Reverse(ctx context.Context, lat, lng float64) (*entity.GeocodeResult, error)
}
