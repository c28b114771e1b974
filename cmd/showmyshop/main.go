package main

import (
	"context"
	"log/slog"
	"os"

	"showmyshop/config"
	"showmyshop/internal/delivery"
	"showmyshop/internal/delivery/api"
	"showmyshop/internal/delivery/api/middleware"
	"showmyshop/internal/delivery/api/router/handler"
	"showmyshop/internal/infra/auth"
	"showmyshop/internal/infra/cache"
	"showmyshop/internal/infra/geocoding"
	logs "showmyshop/internal/infra/log"
	"showmyshop/internal/infra/persistence"
	"showmyshop/internal/infra/places"
	"showmyshop/internal/infra/pubsub"
	"showmyshop/internal/infra/qrcode"
	"showmyshop/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		// Expose QR code config for the QR code service
		func(cfg *config.Config) *config.QRCodeConfig {
			return cfg.QRCode
		},
		logs.New,
		context.Background,
		cache.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewProvider,
			geocoding.New,
			places.New,
			pubsub.NewEventPublisher,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewShopService,
			impl.NewAdminService,
			impl.NewReviewService,
			impl.NewCatalogService,
			impl.NewAssistantService,
			impl.NewPlaceService,
			impl.NewGeocodeService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewShopHandler,
			handler.NewReviewHandler,
			handler.NewAdminHandler,
			handler.NewCatalogHandler,
			handler.NewAssistantHandler,
			handler.NewPlaceHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
