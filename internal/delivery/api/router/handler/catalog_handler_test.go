package handler

import (
	"net/http"
	"testing"

	"showmyshop/internal/domain/catalog"
	"showmyshop/internal/domain/entity"
	mockUsecase "showmyshop/internal/mocks/usecase"
	"showmyshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCatalogHandler(t *testing.T) (*CatalogHandler, *mockUsecase.MockCatalogUsecase) {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)

	return NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()}), catalogUC
}

func TestCatalogHandler_SearchShops(t *testing.T) {
	h, catalogUC := newTestCatalogHandler(t)
	distance := 1.5

	catalogUC.EXPECT().
		Search(mock.Anything, mock.MatchedBy(func(in *usecase.SearchShopsInput) bool {
			return in.Query == "fruit" && in.Sort == "nearest" &&
				in.Lat != nil && *in.Lat == 17.4 && in.Lng != nil && *in.Lng == 78.5
		})).
		Return([]catalog.Result{{Shop: &entity.Shop{ID: uuid.New(), Name: "Fruit Stall"}, DistanceKm: &distance}}, nil)

	rec := serve(t, h.SearchShops, request{
		method: http.MethodGet,
		target: "/api/shops/search?q=fruit&sort=nearest&lat=17.4&lng=78.5",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"distanceKm":1.5`)
	assert.Contains(t, rec.Body.String(), `"name":"Fruit Stall"`)
}

func TestCatalogHandler_SearchShops_BadCoordinate(t *testing.T) {
	h, _ := newTestCatalogHandler(t)

	rec := serve(t, h.SearchShops, request{method: http.MethodGet, target: "/api/shops/search?lat=north"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_COORDINATES", decode(t, rec).Error.Code)
}

func TestCatalogHandler_ShopMarkers(t *testing.T) {
	h, catalogUC := newTestCatalogHandler(t)
	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(orb.Point{78.5, 17.4}))

	catalogUC.EXPECT().Markers(mock.Anything).Return(fc, nil)

	rec := serve(t, h.ShopMarkers, request{method: http.MethodGet, target: "/api/shops/geojson"})

	require.Equal(t, http.StatusOK, rec.Code)

	decoded, err := geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, decoded.Features, 1)
	assert.Equal(t, orb.Point{78.5, 17.4}, decoded.Features[0].Geometry)
}
