// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"showmyshop/internal/domain/entity"
	"showmyshop/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Domain-specific errors for shop persistence.
var (
	// ErrShopNotFound is returned when a shop is not found.
	ErrShopNotFound = errors.New("shop not found")
)

// ShopRepository defines the interface for shop-related database operations.
type ShopRepository interface {
	// Create persists a new shop. Timestamps are assigned by the store.
	Create(ctx context.Context, shop *entity.Shop) error

	// FindByID retrieves a shop by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// List returns shops matching the filter, newest first.
	List(ctx context.Context, filter entity.ShopFilter) ([]*entity.Shop, error)

	// Update writes the descriptive fields and coordinates of an existing shop.
	// The rating aggregate and approval flag are left untouched.
	Update(ctx context.Context, shop *entity.Shop) error

	// Delete removes a shop by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// SetApproved sets the moderation flag and returns the updated shop.
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) (*entity.Shop, error)

	// ApplyRating folds one rating into the stored aggregate in a single atomic
	// write and returns the updated shop.
	ApplyRating(ctx context.Context, id uuid.UUID, rating int) (*entity.Shop, error)

	// SetLocationIfMissing stores coordinates only while the shop has none and
	// its address still equals address. It reports whether a write happened.
	SetLocationIfMissing(ctx context.Context, id uuid.UUID, address string, location orb.Point) (bool, error)
}
