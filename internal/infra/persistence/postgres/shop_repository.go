// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"showmyshop/internal/domain/entity"
	domainerrors "showmyshop/internal/domain/errors"
	"showmyshop/internal/domain/repository"
	"showmyshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// shopRepository implements the repository.ShopRepository interface.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{
		db: db,
	}
}

// Create persists a new shop.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	now := storeNow()
	shop.CreatedAt = now
	shop.UpdatedAt = now
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required shop information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	return nil
}

// FindByID retrieves a shop by its unique ID.
func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by ID")
	}

	return toShopDomain(&shopM), nil
}

// List returns shops, newest first.
func (repo *shopRepository) List(ctx context.Context, filter entity.ShopFilter) ([]*entity.Shop, error) {
	var shopModels []*model.ShopModel

	query := repo.db.WithContext(ctx)
	if filter.VendorEmail != "" {
		query = query.Where("vendor_email = ?", filter.VendorEmail)
	}

	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Find(&shopModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	shops := make([]*entity.Shop, 0, len(shopModels))
	for _, shopM := range shopModels {
		shops = append(shops, toShopDomain(shopM))
	}

	return shops, nil
}

// Update writes the editable fields of a shop.
func (repo *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	shop.UpdatedAt = storeNow()

	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ?", shop.ID).
		Updates(map[string]any{
			"name":        shop.Name,
			"products":    shop.Products,
			"description": shop.Description,
			"timings":     shop.Timings,
			"address":     shop.Address,
			"number":      shop.Number,
			"lat":         shop.Lat,
			"lng":         shop.Lng,
			"updated_at":  shop.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update shop")
	}

	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// Delete removes a shop. Reviews follow through the foreign key cascade.
func (repo *shopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ShopModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete shop")
	}

	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// SetApproved sets the moderation flag.
func (repo *shopRepository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) (*entity.Shop, error) {
	return repo.updateReturning(ctx, id, map[string]any{
		"approved":   approved,
		"updated_at": storeNow(),
	})
}

// ApplyRating folds rating into the aggregate with a single UPDATE so that
// concurrent reviews never read a stale average.
func (repo *shopRepository) ApplyRating(ctx context.Context, id uuid.UUID, rating int) (*entity.Shop, error) {
	return repo.updateReturning(ctx, id, map[string]any{
		"average_rating": gorm.Expr("ROUND(((average_rating * ratings_count + ?) / (ratings_count + 1))::numeric, 2)", rating),
		"ratings_count":  gorm.Expr("ratings_count + 1"),
		"updated_at":     storeNow(),
	})
}

// SetLocationIfMissing stores coordinates for a shop that has none.
func (repo *shopRepository) SetLocationIfMissing(ctx context.Context, id uuid.UUID, address string, location orb.Point) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ? AND address = ? AND (lat IS NULL OR lng IS NULL)", id, address).
		Updates(map[string]any{
			"lat":        location.Lat(),
			"lng":        location.Lon(),
			"updated_at": storeNow(),
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to set shop location")
	}

	return result.RowsAffected > 0, nil
}

func (repo *shopRepository) updateReturning(ctx context.Context, id uuid.UUID, values map[string]any) (*entity.Shop, error) {
	var shopM model.ShopModel

	result := repo.db.WithContext(ctx).
		Model(&shopM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(values)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update shop")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrShopNotFound
	}

	return toShopDomain(&shopM), nil
}

// storeNow truncates to the column precision so values read back compare equal.
func storeNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// --- Mapper Functions ---

func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	return &entity.Shop{
		ID:            data.ID,
		VendorEmail:   data.VendorEmail,
		Name:          data.Name,
		Products:      data.Products,
		Description:   data.Description,
		Timings:       data.Timings,
		Address:       data.Address,
		Number:        data.Number,
		Lat:           data.Lat,
		Lng:           data.Lng,
		AverageRating: data.AverageRating,
		RatingsCount:  data.RatingsCount,
		Approved:      data.Approved,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	return &model.ShopModel{
		ID:            data.ID,
		VendorEmail:   data.VendorEmail,
		Name:          data.Name,
		Products:      data.Products,
		Description:   data.Description,
		Timings:       data.Timings,
		Address:       data.Address,
		Number:        data.Number,
		Lat:           data.Lat,
		Lng:           data.Lng,
		AverageRating: data.AverageRating,
		RatingsCount:  data.RatingsCount,
		Approved:      data.Approved,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
