package mongo

import (
	"context"
	"time"

	"showmyshop/internal/domain/entity"
	domainerrors "showmyshop/internal/domain/errors"
	"showmyshop/internal/domain/repository"
	"showmyshop/internal/errors"
	"showmyshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// shopRepository implements the repository.ShopRepository interface.
type shopRepository struct {
	coll *mongo.Collection
	sess mongo.Session
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *mongo.Database) repository.ShopRepository {
	return newShopRepository(db, nil)
}

func newShopRepository(db *mongo.Database, sess mongo.Session) *shopRepository {
	return &shopRepository{coll: db.Collection(shopsCollection), sess: sess}
}

// Create persists a new shop.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	now := storeNow()
	shop.CreatedAt = now
	shop.UpdatedAt = now

	if _, err := repo.coll.InsertOne(bind(ctx, repo.sess), fromShopDomain(shop)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	return nil
}

// FindByID retrieves a shop by its unique ID.
func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var doc model.ShopDocument

	err := repo.coll.FindOne(bind(ctx, repo.sess), bson.D{{Key: "_id", Value: id.String()}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrShopNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop by ID")
	}

	return toShopDomain(&doc)
}

// List returns shops, newest first.
func (repo *shopRepository) List(ctx context.Context, filter entity.ShopFilter) ([]*entity.Shop, error) {
	query := bson.D{}
	if filter.VendorEmail != "" {
		query = append(query, bson.E{Key: "vendorEmail", Value: filter.VendorEmail})
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := repo.coll.Find(bind(ctx, repo.sess), query, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	var docs []*model.ShopDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode shops")
	}

	shops := make([]*entity.Shop, 0, len(docs))
	for _, doc := range docs {
		shop, err := toShopDomain(doc)
		if err != nil {
			return nil, err
		}
		shops = append(shops, shop)
	}

	return shops, nil
}

// Update writes the editable fields of a shop.
func (repo *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	shop.UpdatedAt = storeNow()

	result, err := repo.coll.UpdateOne(bind(ctx, repo.sess),
		bson.D{{Key: "_id", Value: shop.ID.String()}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "name", Value: shop.Name},
			{Key: "products", Value: shop.Products},
			{Key: "description", Value: shop.Description},
			{Key: "timings", Value: shop.Timings},
			{Key: "address", Value: shop.Address},
			{Key: "number", Value: shop.Number},
			{Key: "lat", Value: shop.Lat},
			{Key: "lng", Value: shop.Lng},
			{Key: "updatedAt", Value: shop.UpdatedAt},
		}}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to update shop")
	}

	if result.MatchedCount == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// Delete removes a shop. Its reviews are removed by ReviewRepository.DeleteByShop.
func (repo *shopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.coll.DeleteOne(bind(ctx, repo.sess), bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return errors.Wrap(err, "failed to delete shop")
	}

	if result.DeletedCount == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// SetApproved sets the moderation flag.
func (repo *shopRepository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) (*entity.Shop, error) {
	return repo.findOneAndUpdate(ctx, id, bson.D{{Key: "$set", Value: bson.D{
		{Key: "approved", Value: approved},
		{Key: "updatedAt", Value: storeNow()},
	}}})
}

// ApplyRating folds rating into the stored aggregate with one pipeline
// update. Every expression in the $set stage reads the pre-update document.
func (repo *shopRepository) ApplyRating(ctx context.Context, id uuid.UUID, rating int) (*entity.Shop, error) {
	average := bson.D{{Key: "$divide", Value: bson.A{
		bson.D{{Key: "$add", Value: bson.A{
			bson.D{{Key: "$multiply", Value: bson.A{"$averageRating", "$ratingsCount"}}},
			rating,
		}}},
		bson.D{{Key: "$add", Value: bson.A{"$ratingsCount", 1}}},
	}}}

	return repo.findOneAndUpdate(ctx, id, mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "averageRating", Value: roundHalfUp(average)},
			{Key: "ratingsCount", Value: bson.D{{Key: "$add", Value: bson.A{"$ratingsCount", 1}}}},
			{Key: "updatedAt", Value: "$$NOW"},
		}}},
	})
}

// SetLocationIfMissing stores coordinates for a shop that has none.
func (repo *shopRepository) SetLocationIfMissing(ctx context.Context, id uuid.UUID, address string, location orb.Point) (bool, error) {
	result, err := repo.coll.UpdateOne(bind(ctx, repo.sess),
		bson.D{
			{Key: "_id", Value: id.String()},
			{Key: "address", Value: address},
			{Key: "$or", Value: bson.A{
				bson.D{{Key: "lat", Value: nil}},
				bson.D{{Key: "lng", Value: nil}},
			}},
		},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "lat", Value: location.Lat()},
			{Key: "lng", Value: location.Lon()},
			{Key: "updatedAt", Value: storeNow()},
		}}},
	)
	if err != nil {
		return false, errors.Wrap(err, "failed to set shop location")
	}

	return result.ModifiedCount > 0, nil
}

// roundHalfUp rounds a non-negative expression to two decimals, halves going
// up. $round rounds halves to even, so 4.125 would store as 4.12.
func roundHalfUp(expr bson.D) bson.D {
	return bson.D{{Key: "$divide", Value: bson.A{
		bson.D{{Key: "$floor", Value: bson.D{{Key: "$add", Value: bson.A{
			bson.D{{Key: "$multiply", Value: bson.A{expr, 100}}},
			0.5,
		}}}}},
		100,
	}}}
}

func (repo *shopRepository) findOneAndUpdate(ctx context.Context, id uuid.UUID, update any) (*entity.Shop, error) {
	var doc model.ShopDocument

	err := repo.coll.FindOneAndUpdate(bind(ctx, repo.sess),
		bson.D{{Key: "_id", Value: id.String()}},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrShopNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update shop")
	}

	return toShopDomain(&doc)
}

// storeNow truncates to BSON date precision so values read back compare equal.
func storeNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// --- Mapper Functions ---

func toShopDomain(doc *model.ShopDocument) (*entity.Shop, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid shop id %q", doc.ID)
	}

	return &entity.Shop{
		ID:            id,
		VendorEmail:   doc.VendorEmail,
		Name:          doc.Name,
		Products:      doc.Products,
		Description:   doc.Description,
		Timings:       doc.Timings,
		Address:       doc.Address,
		Number:        doc.Number,
		Lat:           doc.Lat,
		Lng:           doc.Lng,
		AverageRating: doc.AverageRating,
		RatingsCount:  doc.RatingsCount,
		Approved:      doc.Approved,
		CreatedAt:     doc.CreatedAt.UTC(),
		UpdatedAt:     doc.UpdatedAt.UTC(),
	}, nil
}

func fromShopDomain(shop *entity.Shop) *model.ShopDocument {
	return &model.ShopDocument{
		ID:            shop.ID.String(),
		VendorEmail:   shop.VendorEmail,
		Name:          shop.Name,
		Products:      shop.Products,
		Description:   shop.Description,
		Timings:       shop.Timings,
		Address:       shop.Address,
		Number:        shop.Number,
		Lat:           shop.Lat,
		Lng:           shop.Lng,
		AverageRating: shop.AverageRating,
		RatingsCount:  shop.RatingsCount,
		Approved:      shop.Approved,
		CreatedAt:     shop.CreatedAt,
		UpdatedAt:     shop.UpdatedAt,
	}
}
