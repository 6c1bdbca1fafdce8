package mongodb

import (
	"context"

	"api/database"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Store implements storage.Store on a MongoDB database through one shared,
// process-lifetime client.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func New(client *mongo.Client, dbName string) *Store {
	return &Store{
		client: client,
		db:     client.Database(dbName),
	}
}

func (s *Store) applications() *mongo.Collection {
	return s.db.Collection(database.COLLECTION_APPLICATIONS)
}

func (s *Store) archived() *mongo.Collection {
	return s.db.Collection(database.COLLECTION_ARCHIVED_APPLICATIONS)
}

func (s *Store) products() *mongo.Collection {
	return s.db.Collection(database.COLLECTION_PRODUCTS)
}

func (s *Store) reviews() *mongo.Collection {
	return s.db.Collection(database.COLLECTION_REVIEWS)
}

func (s *Store) posts() *mongo.Collection {
	return s.db.Collection(database.COLLECTION_POSTS)
}

func (s *Store) comments() *mongo.Collection {
	return s.db.Collection(database.COLLECTION_COMMENTS)
}

func (s *Store) settings() *mongo.Collection {
	return s.db.Collection(database.COLLECTION_SETTINGS)
}

func (s *Store) sessions() *mongo.Collection {
	return s.db.Collection(database.COLLECTION_ADMIN_SESSIONS)
}

// withTransaction runs fn inside a session transaction, the store's native
// multi-document atomic batch: either every write in fn commits or none do.
func (s *Store) withTransaction(ctx context.Context, fn func(ctx context.Context) (any, error)) (any, error) {
	session, err := s.client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	return session.WithTransaction(ctx, fn)
}
