package usecase

import (
	"context"

	"showmyshop/internal/domain/catalog"

	"github.com/paulmach/orb/geojson"
)

// SearchShopsInput represents a catalog query
type SearchShopsInput struct {
	Query string
	Sort  string
	Lat   *float64
	Lng   *float64
}

// CatalogUsecase defines read-only views over the shop listing
type CatalogUsecase interface {
	Search(ctx context.Context, input *SearchShopsInput) ([]catalog.Result, error)

	// Markers returns located shops as GeoJSON point features.
	Markers(ctx context.Context) (*geojson.FeatureCollection, error)
}
