//go:build integration

package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"showmyshop/internal/domain/entity"
	domainerrors "showmyshop/internal/domain/errors"
	"showmyshop/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "showmyshop",
				"POSTGRES_PASSWORD": "showmyshop",
				"POSTGRES_DB":       "showmyshop_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=showmyshop password=showmyshop dbname=showmyshop_test sslmode=disable",
		host, port.Port())
	db, err := gorm.Open(gormpg.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(slog.New(slog.DiscardHandler), nil),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(ctx, db))

	return db
}

func newShop(email, name string) *entity.Shop {
	return &entity.Shop{
		ID:          uuid.New(),
		VendorEmail: email,
		Name:        name,
		Products:    "bread, cake",
		Address:     "Abids, Hyderabad",
		Number:      "9999999999",
		Approved:    true,
	}
}

func TestPostgresStore(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping container-based test in short mode")
	}

	db := setupPostgres(t)
	ctx := context.Background()
	shops := NewShopRepository(db)
	reviews := NewReviewRepository(db)

	t.Run("create, find and list newest first", func(t *testing.T) {
		first := newShop("list@example.com", "First")
		require.NoError(t, shops.Create(ctx, first))
		time.Sleep(5 * time.Millisecond)
		second := newShop("list@example.com", "Second")
		require.NoError(t, shops.Create(ctx, second))

		found, err := shops.FindByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, first.Name, found.Name)
		assert.Equal(t, first.Products, found.Products)
		assert.Nil(t, found.Lat)
		assert.True(t, first.CreatedAt.Equal(found.CreatedAt))

		listed, err := shops.List(ctx, entity.ShopFilter{VendorEmail: "list@example.com"})
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, "Second", listed[0].Name)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := shops.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrShopNotFound)
		assert.ErrorIs(t, shops.Delete(ctx, uuid.New()), repository.ErrShopNotFound)
		_, err = shops.ApplyRating(ctx, uuid.New(), 3)
		assert.ErrorIs(t, err, repository.ErrShopNotFound)
		_, err = shops.SetApproved(ctx, uuid.New(), false)
		assert.ErrorIs(t, err, repository.ErrShopNotFound)
	})

	t.Run("apply rating keeps running average", func(t *testing.T) {
		shop := newShop("rate@example.com", "Rated")
		require.NoError(t, shops.Create(ctx, shop))

		updated, err := shops.ApplyRating(ctx, shop.ID, 3)
		require.NoError(t, err)
		assert.Equal(t, shop.ID, updated.ID)
		assert.InDelta(t, 3.0, updated.AverageRating, 1e-9)
		assert.Equal(t, 1, updated.RatingsCount)

		updated, err = shops.ApplyRating(ctx, shop.ID, 5)
		require.NoError(t, err)
		assert.InDelta(t, 4.0, updated.AverageRating, 1e-9)
		assert.Equal(t, 2, updated.RatingsCount)
	})

	t.Run("apply rating rounds halves up", func(t *testing.T) {
		shop := newShop("half@example.com", "Halfway")
		require.NoError(t, shops.Create(ctx, shop))

		for range 7 {
			_, err := shops.ApplyRating(ctx, shop.ID, 4)
			require.NoError(t, err)
		}

		updated, err := shops.ApplyRating(ctx, shop.ID, 5)
		require.NoError(t, err)
		assert.Equal(t, 8, updated.RatingsCount)
		assert.InDelta(t, 4.13, updated.AverageRating, 1e-9)
	})

	t.Run("concurrent ratings are not lost", func(t *testing.T) {
		shop := newShop("race@example.com", "Busy")
		require.NoError(t, shops.Create(ctx, shop))

		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := shops.ApplyRating(ctx, shop.ID, 4)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		found, err := shops.FindByID(ctx, shop.ID)
		require.NoError(t, err)
		assert.Equal(t, 20, found.RatingsCount)
		assert.InDelta(t, 4.0, found.AverageRating, 1e-9)
	})

	t.Run("set location only when missing", func(t *testing.T) {
		shop := newShop("geo@example.com", "Unlocated")
		require.NoError(t, shops.Create(ctx, shop))

		written, err := shops.SetLocationIfMissing(ctx, shop.ID, "elsewhere", orb.Point{78.4, 17.4})
		require.NoError(t, err)
		assert.False(t, written)

		written, err = shops.SetLocationIfMissing(ctx, shop.ID, shop.Address, orb.Point{78.4, 17.4})
		require.NoError(t, err)
		assert.True(t, written)

		written, err = shops.SetLocationIfMissing(ctx, shop.ID, shop.Address, orb.Point{1, 1})
		require.NoError(t, err)
		assert.False(t, written)

		found, err := shops.FindByID(ctx, shop.ID)
		require.NoError(t, err)
		require.NotNil(t, found.Lat)
		assert.InDelta(t, 17.4, *found.Lat, 1e-9)
		assert.InDelta(t, 78.4, *found.Lng, 1e-9)
	})

	t.Run("review pages are newest first and disjoint", func(t *testing.T) {
		shop := newShop("rev@example.com", "Reviewed")
		require.NoError(t, shops.Create(ctx, shop))

		base := time.Now().UTC().Truncate(time.Millisecond)
		for i := range 5 {
			require.NoError(t, reviews.Create(ctx, &entity.Review{
				ID:        uuid.New(),
				ShopID:    shop.ID,
				UserEmail: "u@example.com",
				Rating:    i%5 + 1,
				// Two reviews share a timestamp to exercise the id tiebreak.
				CreatedAt: base.Add(time.Duration(i/2) * time.Second),
			}))
		}

		seen := make(map[uuid.UUID]bool)
		var previous *entity.Review
		page := entity.ReviewPage{Limit: 2}
		for {
			got, err := reviews.ListByShop(ctx, shop.ID, page)
			require.NoError(t, err)
			if len(got) == 0 {
				break
			}
			for _, r := range got {
				assert.False(t, seen[r.ID], "review %s returned twice", r.ID)
				seen[r.ID] = true
				if previous != nil {
					assert.False(t, r.CreatedAt.After(previous.CreatedAt))
				}
				previous = r
			}
			page.After = entity.CursorAfter(got[len(got)-1])
		}
		assert.Len(t, seen, 5)

		require.NoError(t, reviews.DeleteByShop(ctx, shop.ID))
		left, err := reviews.ListByShop(ctx, shop.ID, entity.ReviewPage{Limit: 10})
		require.NoError(t, err)
		assert.Empty(t, left)
	})

	t.Run("review constraints map to domain errors", func(t *testing.T) {
		err := reviews.Create(ctx, &entity.Review{
			ID:        uuid.New(),
			ShopID:    uuid.New(),
			UserEmail: "u@example.com",
			Rating:    4,
		})
		assert.ErrorIs(t, err, repository.ErrShopNotFound)

		shop := newShop("check@example.com", "Checked")
		require.NoError(t, shops.Create(ctx, shop))
		err = reviews.Create(ctx, &entity.Review{
			ID:        uuid.New(),
			ShopID:    shop.ID,
			UserEmail: "u@example.com",
			Rating:    6,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
	})

	t.Run("deleting a shop cascades to its reviews", func(t *testing.T) {
		shop := newShop("cascade@example.com", "Doomed")
		require.NoError(t, shops.Create(ctx, shop))
		require.NoError(t, reviews.Create(ctx, &entity.Review{
			ID:        uuid.New(),
			ShopID:    shop.ID,
			UserEmail: "u@example.com",
			Rating:    2,
		}))

		require.NoError(t, shops.Delete(ctx, shop.ID))

		left, err := reviews.ListByShop(ctx, shop.ID, entity.ReviewPage{Limit: 10})
		require.NoError(t, err)
		assert.Empty(t, left)
	})

	t.Run("approve and update", func(t *testing.T) {
		shop := newShop("mod@example.com", "Moderated")
		require.NoError(t, shops.Create(ctx, shop))

		updated, err := shops.SetApproved(ctx, shop.ID, false)
		require.NoError(t, err)
		assert.Equal(t, shop.ID, updated.ID)
		assert.Equal(t, "Moderated", updated.Name)
		assert.False(t, updated.Approved)

		shop.Name = "Renamed"
		require.NoError(t, shops.Update(ctx, shop))
		found, err := shops.FindByID(ctx, shop.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", found.Name)
		assert.False(t, found.Approved)
	})

	t.Run("transaction rolls back on error", func(t *testing.T) {
		txManager := NewTransactionManager(db)
		shop := newShop("tx@example.com", "Rolled back")
		errAbort := errors.New("abort")

		err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			if err := factory.ShopRepo().Create(ctx, shop); err != nil {
				return err
			}

			return errAbort
		})
		require.ErrorIs(t, err, errAbort)

		_, err = shops.FindByID(ctx, shop.ID)
		assert.ErrorIs(t, err, repository.ErrShopNotFound)
	})
}
