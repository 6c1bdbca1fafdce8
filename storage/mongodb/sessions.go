package mongodb

import (
	"context"
	"time"

	"api/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func (s *Store) CreateSession(ctx context.Context, session *schemas.AdminSession) error {
	now := time.Now().UTC()
	session.LoginTime = now
	session.LastActive = now

	_, err := s.sessions().InsertOne(ctx, session)
	return err
}

// TouchSession merges a fresh lastActive into the session document, leaving
// browser and loginTime untouched. Unknown ids no-op: the tab may already
// have logged out.
func (s *Store) TouchSession(ctx context.Context, id string) error {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "last_active", Value: time.Now().UTC()}}}}
	_, err := s.sessions().UpdateByID(ctx, id, update)
	return err
}

func (s *Store) DeleteSession(ctx context.Context, id string) error {
	_, err := s.sessions().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	return err
}

func (s *Store) ListSessions(ctx context.Context) ([]schemas.AdminSession, error) {
	cursor, err := s.sessions().Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sessions := []schemas.AdminSession{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}

	return sessions, nil
}
