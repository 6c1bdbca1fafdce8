package mongodb

import (
	"context"
	"time"

	"api/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func (s *Store) CreateApplication(ctx context.Context, app *schemas.Application) (string, error) {
	app.ID = bson.NewObjectID()
	app.Status = schemas.StatusPending
	app.CreatedAt = time.Now().UTC()
	app.ArchivedAt = nil

	if _, err := s.applications().InsertOne(ctx, app); err != nil {
		return "", err
	}

	return app.ID.Hex(), nil
}

func (s *Store) ListApplications(ctx context.Context, status string) ([]schemas.Application, error) {
	filter := bson.D{}
	if status != "" {
		filter = bson.D{{Key: "status", Value: status}}
	}

	cursor, err := s.applications().Find(ctx, filter)
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

// UpdateApplication applies a partial $set. An unknown or malformed id is a
// no-op success, matching the store's own update semantics.
func (s *Store) UpdateApplication(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	set := bson.D{}
	for key, value := range fields {
		set = append(set, bson.E{Key: key, Value: value})
	}

	_, err = s.applications().UpdateByID(ctx, oid, bson.D{{Key: "$set", Value: set}})
	return err
}

func (s *Store) DeleteApplication(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	_, err = s.applications().DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	return err
}
