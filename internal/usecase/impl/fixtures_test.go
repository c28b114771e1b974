package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"showmyshop/internal/domain/entity"
	"showmyshop/internal/domain/repository"
	mockRepo "showmyshop/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTx runs the transaction body against repositories bound to the mock factory.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, shopRepo repository.ShopRepository, reviewRepo repository.ReviewRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			if shopRepo != nil {
				factory.EXPECT().ShopRepo().Return(shopRepo).Maybe()
			}
			if reviewRepo != nil {
				factory.EXPECT().ReviewRepo().Return(reviewRepo).Maybe()
			}

			return fn(factory)
		})
}

func ptr[T any](v T) *T {
	return &v
}

func newTestShop(vendorEmail string) *entity.Shop {
	return &entity.Shop{
		ID:          uuid.New(),
		VendorEmail: vendorEmail,
		Name:        "Fresh Mart",
		Products:    "vegetables, fruits",
		Address:     "Abids, Hyderabad",
		Number:      "9999999999",
		Approved:    true,
	}
}

var (
	vendorCaller = &entity.Caller{UID: "v1", Email: "vendor@example.com"}
	otherCaller  = &entity.Caller{UID: "o1", Email: "other@example.com"}
	adminCaller  = &entity.Caller{UID: "a1", Email: "admin@localhunt.com", Admin: true}
)
