//go:build integration

package mongo

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"showmyshop/internal/domain/entity"
	"showmyshop/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func setupMongo(t *testing.T) *mongo.Database {
	t.Helper()

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate mongo container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(fmt.Sprintf("mongodb://%s:%s", host, port.Port())))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	db := client.Database("showmyshop_test")
	require.NoError(t, EnsureIndexes(ctx, db))

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

func TestMongoStore(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping container-based test in short mode")
	}

	db := setupMongo(t)
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
		assert.Equal(t, first, found)

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
	})

	t.Run("apply rating keeps running average", func(t *testing.T) {
		shop := newShop("rate@example.com", "Rated")
		require.NoError(t, shops.Create(ctx, shop))

		updated, err := shops.ApplyRating(ctx, shop.ID, 3)
		require.NoError(t, err)
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

		var seen []uuid.UUID
		page := entity.ReviewPage{Limit: 2}
		for {
			got, err := reviews.ListByShop(ctx, shop.ID, page)
			require.NoError(t, err)
			if len(got) == 0 {
				break
			}
			for _, r := range got {
				seen = append(seen, r.ID)
			}
			page.After = entity.CursorAfter(got[len(got)-1])
		}
		assert.Len(t, seen, 5)

		require.NoError(t, reviews.DeleteByShop(ctx, shop.ID))
		left, err := reviews.ListByShop(ctx, shop.ID, entity.ReviewPage{Limit: 10})
		require.NoError(t, err)
		assert.Empty(t, left)
	})

	t.Run("approve and update", func(t *testing.T) {
		shop := newShop("mod@example.com", "Moderated")
		require.NoError(t, shops.Create(ctx, shop))

		updated, err := shops.SetApproved(ctx, shop.ID, false)
		require.NoError(t, err)
		assert.False(t, updated.Approved)

		shop.Name = "Renamed"
		require.NoError(t, shops.Update(ctx, shop))
		found, err := shops.FindByID(ctx, shop.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", found.Name)
		assert.False(t, found.Approved)
	})
}
