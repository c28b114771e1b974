// Package persistence selects the store driver behind the repositories.
package persistence

import (
	"log/slog"

	"showmyshop/config"
	"showmyshop/internal/domain/constants"
	"showmyshop/internal/domain/repository"
	"showmyshop/internal/errors"
	mongostore "showmyshop/internal/infra/persistence/mongo"
	"showmyshop/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Result exposes the repositories of the configured driver.
type Result struct {
	fx.Out

	ShopRepo   repository.ShopRepository
	ReviewRepo repository.ReviewRepository
	TxManager  repository.TransactionManager
}

// New opens the store named by store.driver.
func New(params Params) (Result, error) {
	driver := params.Config.Store.Driver
	params.Logger.Info("Initializing store", slog.String("driver", driver))

	switch driver {
	case constants.StoreDriverMongo:
		db, err := mongostore.New(mongostore.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Result{}, err
		}

		return Result{
			ShopRepo:   mongostore.NewShopRepository(db),
			ReviewRepo: mongostore.NewReviewRepository(db),
			TxManager:  mongostore.NewTransactionManager(db, params.Config.Mongo.Transactions),
		}, nil

	case constants.StoreDriverPostgres:
		if params.Config.Postgres == nil {
			return Result{}, errors.New("postgres configuration is required for the postgres store driver")
		}

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Result{}, err
		}

		return Result{
			ShopRepo:   postgres.NewShopRepository(db),
			ReviewRepo: postgres.NewReviewRepository(db),
			TxManager:  postgres.NewTransactionManager(db),
		}, nil

	default:
		return Result{}, errors.Errorf("unsupported store driver: %s", driver)
	}
}
