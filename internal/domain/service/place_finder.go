package service

import (
	"context"

	"showmyshop/internal/domain/entity"
)

// PlaceFinder looks up crowdsourced shop points of interest.
type PlaceFinder interface {
	// Nearby returns shop nodes within radiusMeters of the given point.
	Nearby(ctx context.Context, lat, lng float64, radiusMeters int) ([]*entity.Place, error)
}
