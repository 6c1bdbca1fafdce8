package mongodb

import (
	"context"
	"errors"
	"time"

	"api/schemas"
	"api/storage"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ArchiveCompleted moves every status=completed application into the archive
// collection with archived_at stamped, inside one transaction. Returns how
// many were moved; zero is a normal outcome.
func (s *Store) ArchiveCompleted(ctx context.Context) (int, error) {
	result, err := s.withTransaction(ctx, func(ctx context.Context) (any, error) {
		cursor, err := s.applications().Find(ctx, bson.D{{Key: "status", Value: schemas.StatusCompleted}})
		if err != nil {
			return 0, err
		}

		apps := []schemas.Application{}
		if err := cursor.All(ctx, &apps); err != nil {
			return 0, err
		}

		if len(apps) == 0 {
			return 0, nil
		}

		now := time.Now().UTC()
		docs := make([]any, 0, len(apps))
		ids := make([]bson.ObjectID, 0, len(apps))
		for i := range apps {
			apps[i].ArchivedAt = &now
			docs = append(docs, apps[i])
			ids = append(ids, apps[i].ID)
		}

		if _, err := s.archived().InsertMany(ctx, docs); err != nil {
			return 0, err
		}

		filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}
		if _, err := s.applications().DeleteMany(ctx, filter); err != nil {
			return 0, err
		}

		return len(apps), nil
	})
	if err != nil {
		return 0, err
	}

	return result.(int), nil
}

func (s *Store) ListArchived(ctx context.Context) ([]schemas.Application, error) {
	opts := options.Find().SetSort(bson.D{{Key: "archived_at", Value: -1}})

	cursor, err := s.archived().Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	apps := []schemas.Application{}
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}

	return apps, nil
}

// RestoreArchived copies an archived application back into the active
// collection under the same id, dropping archived_at, and removes the
// archive document. Both writes share one transaction.
func (s *Store) RestoreArchived(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return storage.ErrNotFound
	}

	_, err = s.withTransaction(ctx, func(ctx context.Context) (any, error) {
		var app schemas.Application
		err := s.archived().FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&app)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrNotFound
		}
		if err != nil {
			return nil, err
		}

		app.ArchivedAt = nil
		if _, err := s.applications().InsertOne(ctx, app); err != nil {
			return nil, err
		}

		if _, err := s.archived().DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}}); err != nil {
			return nil, err
		}

		return nil, nil
	})
	return err
}

func (s *Store) DeleteArchived(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	_, err = s.archived().DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	return err
}
