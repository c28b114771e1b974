package impl

import (
	"context"
	"testing"

	"showmyshop/config"
	"showmyshop/internal/domain/entity"
	domainerrors "showmyshop/internal/domain/errors"
	mockService "showmyshop/internal/mocks/service"
	"showmyshop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceService_Nearby_Radius(t *testing.T) {
	cfg := &config.Config{Places: &config.PlacesConfig{DefaultRadius: 10000, MaxRadius: 50000}}

	tests := []struct {
		name       string
		radius     int
		wantRadius int
	}{
		{name: "default when unset", radius: 0, wantRadius: 10000},
		{name: "default when negative", radius: -5, wantRadius: 10000},
		{name: "explicit", radius: 1500, wantRadius: 1500},
		{name: "capped", radius: 90000, wantRadius: 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finder := mockService.NewMockPlaceFinder(t)
			svc := NewPlaceService(finder, cfg, newDiscardLogger())
			ctx := context.Background()
			places := []*entity.Place{{ID: 1, Name: "Corner Store", Lat: 17.4, Lng: 78.5, Tags: map[string]string{"shop": "convenience"}}}

			finder.EXPECT().Nearby(ctx, 17.4, 78.5, tt.wantRadius).Return(places, nil)

			got, err := svc.Nearby(ctx, &usecase.NearbyPlacesInput{Lat: 17.4, Lng: 78.5, Radius: tt.radius})

			require.NoError(t, err)
			assert.Equal(t, places, got)
		})
	}
}

func TestPlaceService_Nearby_UpstreamFailure(t *testing.T) {
	finder := mockService.NewMockPlaceFinder(t)
	svc := NewPlaceService(finder, &config.Config{Places: &config.PlacesConfig{DefaultRadius: 100}}, newDiscardLogger())
	ctx := context.Background()

	finder.EXPECT().Nearby(ctx, 1.0, 2.0, 100).Return(nil, errors.New("breaker open"))

	_, err := svc.Nearby(ctx, &usecase.NearbyPlacesInput{Lat: 1, Lng: 2})

	assert.ErrorIs(t, err, domainerrors.ErrUpstreamFailed)
}

func TestPlaceService_Nearby_InvalidCoordinates(t *testing.T) {
	svc := NewPlaceService(mockService.NewMockPlaceFinder(t), &config.Config{Places: &config.PlacesConfig{}}, newDiscardLogger())

	_, err := svc.Nearby(context.Background(), &usecase.NearbyPlacesInput{Lat: 91, Lng: 0})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}
