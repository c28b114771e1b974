package mongo

import (
	"context"

	"showmyshop/internal/domain/entity"
	domainerrors "showmyshop/internal/domain/errors"
	"showmyshop/internal/domain/repository"
	"showmyshop/internal/errors"
	"showmyshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	coll *mongo.Collection
	sess mongo.Session
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *mongo.Database) repository.ReviewRepository {
	return newReviewRepository(db, nil)
}

func newReviewRepository(db *mongo.Database, sess mongo.Session) *reviewRepository {
	return &reviewRepository{coll: db.Collection(reviewsCollection), sess: sess}
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.CreatedAt.IsZero() {
		review.CreatedAt = storeNow()
	}

	if _, err := repo.coll.InsertOne(bind(ctx, repo.sess), fromReviewDomain(review)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	return nil
}

// ListByShop returns one page of reviews, newest first.
func (repo *reviewRepository) ListByShop(ctx context.Context, shopID uuid.UUID, page entity.ReviewPage) ([]*entity.Review, error) {
	filter := bson.D{{Key: "shopId", Value: shopID.String()}}
	if page.After != nil {
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "createdAt", Value: bson.D{{Key: "$lt", Value: page.After.CreatedAt}}}},
			bson.D{
				{Key: "createdAt", Value: page.After.CreatedAt},
				{Key: "_id", Value: bson.D{{Key: "$lt", Value: page.After.ID.String()}}},
			},
		}})
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(page.Limit))

	cursor, err := repo.coll.Find(bind(ctx, repo.sess), filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	var docs []*model.ReviewDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode reviews")
	}

	reviews := make([]*entity.Review, 0, len(docs))
	for _, doc := range docs {
		review, err := toReviewDomain(doc)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

// DeleteByShop removes every review of a shop.
func (repo *reviewRepository) DeleteByShop(ctx context.Context, shopID uuid.UUID) error {
	if _, err := repo.coll.DeleteMany(bind(ctx, repo.sess), bson.D{{Key: "shopId", Value: shopID.String()}}); err != nil {
		return errors.Wrap(err, "failed to delete reviews")
	}

	return nil
}

// --- Mapper Functions ---

func toReviewDomain(doc *model.ReviewDocument) (*entity.Review, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid review id %q", doc.ID)
	}
	shopID, err := uuid.Parse(doc.ShopID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid shop id %q", doc.ShopID)
	}

	return &entity.Review{
		ID:        id,
		ShopID:    shopID,
		UserEmail: doc.UserEmail,
		Rating:    doc.Rating,
		Comment:   doc.Comment,
		CreatedAt: doc.CreatedAt.UTC(),
	}, nil
}

func fromReviewDomain(review *entity.Review) *model.ReviewDocument {
	return &model.ReviewDocument{
		ID:        review.ID.String(),
		ShopID:    review.ShopID.String(),
		UserEmail: review.UserEmail,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}
