package impl

import (
	"context"
	"testing"

	"showmyshop/internal/domain/catalog"
	"showmyshop/internal/domain/entity"
	domainerrors "showmyshop/internal/domain/errors"
	mockRepo "showmyshop/internal/mocks/repository"
	"showmyshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogShops() []*entity.Shop {
	near := newTestShop("a@example.com")
	near.Name = "Zed Bakery"
	near.Lat, near.Lng = ptr(17.385), ptr(78.4867)
	near.AverageRating = 3

	far := newTestShop("b@example.com")
	far.Name = "apple fruits"
	far.Products = "fruits"
	far.Lat, far.Lng = ptr(19.076), ptr(72.8777)
	far.AverageRating = 5

	unlocated := newTestShop("c@example.com")
	unlocated.Name = "Middle Mart"

	return []*entity.Shop{unlocated, far, near}
}

func TestCatalogService_Search_Nearest(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	svc := NewCatalogService(shopRepo, newDiscardLogger())
	ctx := context.Background()

	shopRepo.EXPECT().List(ctx, entity.ShopFilter{}).Return(catalogShops(), nil)

	results, err := svc.Search(ctx, &usecase.SearchShopsInput{
		Sort: "nearest",
		Lat:  ptr(17.4),
		Lng:  ptr(78.5),
	})

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "Zed Bakery", results[0].Name)
	assert.Equal(t, "apple fruits", results[1].Name)
	assert.Equal(t, "Middle Mart", results[2].Name)
	require.NotNil(t, results[0].DistanceKm)
	assert.Less(t, *results[0].DistanceKm, 5.0)
}

func TestCatalogService_Search_TextAndUnknownSort(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	svc := NewCatalogService(shopRepo, newDiscardLogger())
	ctx := context.Background()

	shopRepo.EXPECT().List(ctx, entity.ShopFilter{}).Return(catalogShops(), nil)

	results, err := svc.Search(ctx, &usecase.SearchShopsInput{Query: "MART", Sort: "popularity"})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Middle Mart", results[0].Name)
}

func TestCatalogService_Search_InvalidOrigin(t *testing.T) {
	svc := NewCatalogService(mockRepo.NewMockShopRepository(t), newDiscardLogger())

	_, err := svc.Search(context.Background(), &usecase.SearchShopsInput{
		Sort: string(catalog.SortNearest),
		Lat:  ptr(120.0),
		Lng:  ptr(10.0),
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}

func TestCatalogService_Search_HalfAnOrigin(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.SearchShopsInput
	}{
		{name: "lat without lng", input: usecase.SearchShopsInput{Sort: "nearest", Lat: ptr(17.4)}},
		{name: "lng without lat", input: usecase.SearchShopsInput{Sort: "nearest", Lng: ptr(78.5)}},
		{name: "any sort", input: usecase.SearchShopsInput{Sort: "rating", Lng: ptr(78.5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCatalogService(mockRepo.NewMockShopRepository(t), newDiscardLogger())

			_, err := svc.Search(context.Background(), &tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
		})
	}
}

func TestCatalogService_Markers(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	svc := NewCatalogService(shopRepo, newDiscardLogger())
	ctx := context.Background()

	shopRepo.EXPECT().List(ctx, entity.ShopFilter{}).Return(catalogShops(), nil)

	fc, err := svc.Markers(ctx)

	require.NoError(t, err)
	assert.Len(t, fc.Features, 2)
}
