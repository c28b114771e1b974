package mongo

import (
	"context"

	"showmyshop/internal/domain/repository"
	"showmyshop/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// mongoTransactionManager implements the domain's TransactionManager interface.
// Multi-document transactions need a replica set; on a standalone server the
// callback runs without one and each write is atomic on its own.
type mongoTransactionManager struct {
	db           *mongo.Database
	transactions bool
}

// mongoRepositoryFactory creates repositories bound to one session.
type mongoRepositoryFactory struct {
	db   *mongo.Database
	sess mongo.Session
}

// ShopRepo creates a shop repository bound to the session.
func (f *mongoRepositoryFactory) ShopRepo() repository.ShopRepository {
	return newShopRepository(f.db, f.sess)
}

// ReviewRepo creates a review repository bound to the session.
func (f *mongoRepositoryFactory) ReviewRepo() repository.ReviewRepository {
	return newReviewRepository(f.db, f.sess)
}

// NewTransactionManager is the constructor for mongoTransactionManager.
func NewTransactionManager(db *mongo.Database, transactions bool) repository.TransactionManager {
	return &mongoTransactionManager{db: db, transactions: transactions}
}

// Execute runs fn, inside a transaction when transactions are enabled.
func (tm *mongoTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if !tm.transactions {
		return fn(&mongoRepositoryFactory{db: tm.db})
	}

	sess, err := tm.db.Client().StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start session")
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(_ mongo.SessionContext) (any, error) {
		return nil, fn(&mongoRepositoryFactory{db: tm.db, sess: sess})
	})

	return err
}
