package usecase

import (
	"context"

	"showmyshop/internal/domain/entity"
	"showmyshop/internal/domain/service"
)

// GeocodeUsecase exposes address lookups
type GeocodeUsecase interface {
	Search(ctx context.Context, address string) (*entity.GeocodeResult, error)
	Reverse(ctx context.Context, lat, lng float64) (*entity.GeocodeResult, error)
}

// BackfillUsecase fills in coordinates that could not be resolved inline
type BackfillUsecase interface {
	// HandleEvent processes one delivered shop event. Topics it does not
	// handle are acknowledged without action.
	HandleEvent(ctx context.Context, event *service.ShopEvent) error
}
