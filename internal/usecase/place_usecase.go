package usecase

import (
	"context"

	"showmyshop/internal/domain/entity"
)

// NearbyPlacesInput represents a point of interest query. A zero radius means the configured default.
type NearbyPlacesInput struct {
	Lat    float64
	Lng    float64
	Radius int
}

// PlaceUsecase looks up shops mapped by the community around a point
type PlaceUsecase interface {
	Nearby(ctx context.Context, input *NearbyPlacesInput) ([]*entity.Place, error)
}
