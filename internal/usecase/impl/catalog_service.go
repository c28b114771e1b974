package impl

import (
	"context"
	"log/slog"

	"showmyshop/internal/domain/catalog"
	"showmyshop/internal/domain/entity"
	domainerrors "showmyshop/internal/domain/errors"
	"showmyshop/internal/domain/repository"
	"showmyshop/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	shopRepo repository.ShopRepository
	logger   *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(shopRepo repository.ShopRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		shopRepo: shopRepo,
		logger:   logger,
	}
}

// Search filters the listing by text and orders it. An unknown sort key keeps
// the listing order. The origin is optional but takes both coordinates or
// neither.
func (srv *catalogService) Search(ctx context.Context, input *usecase.SearchShopsInput) ([]catalog.Result, error) {
	query := catalog.Query{Text: input.Query}

	if key, ok := catalog.ParseSortKey(input.Sort); ok {
		query.Sort = key
	} else {
		srv.logger.DebugContext(ctx, "Ignoring unknown sort key", slog.String("sort", input.Sort))
	}

	if (input.Lat == nil) != (input.Lng == nil) {
		return nil, domainerrors.ErrInvalidCoordinates
	}
	if input.Lat != nil {
		if !catalog.ValidCoordinate(*input.Lat, *input.Lng) {
			return nil, domainerrors.ErrInvalidCoordinates
		}
		origin := orb.Point{*input.Lng, *input.Lat}
		query.Origin = &origin
	}

	shops, err := srv.shopRepo.List(ctx, entity.ShopFilter{})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list shops")
	}

	return catalog.Search(shops, query), nil
}

// Markers returns every located shop as a GeoJSON point.
func (srv *catalogService) Markers(ctx context.Context) (*geojson.FeatureCollection, error) {
	shops, err := srv.shopRepo.List(ctx, entity.ShopFilter{})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list shops")
	}

	return catalog.FeatureCollection(shops), nil
}
