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

func (s *Store) CreatePost(ctx context.Context, post *schemas.Post) (string, error) {
	post.ID = bson.NewObjectID()
	post.Views = 0
	post.CreatedAt = time.Now().UTC()

	if _, err := s.posts().InsertOne(ctx, post); err != nil {
		return "", err
	}

	return post.ID.Hex(), nil
}

// ListPosts returns newest-first summaries, each with its comment count from
// a per-post count query. One count per post is fine at board scale.
func (s *Store) ListPosts(ctx context.Context) ([]schemas.PostSummary, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.posts().Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []schemas.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	summaries := make([]schemas.PostSummary, 0, len(posts))
	for _, post := range posts {
		count, err := s.comments().CountDocuments(ctx, bson.D{{Key: "post_id", Value: post.ID.Hex()}})
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, schemas.PostSummary{
			ID:           post.ID,
			Title:        post.Title,
			Author:       post.Author,
			Views:        post.Views,
			CreatedAt:    post.CreatedAt,
			CommentCount: int(count),
		})
	}

	return summaries, nil
}

// GetPost bumps the view counter with an atomic $inc and returns the updated
// document, so concurrent fetches never lose an increment.
func (s *Store) GetPost(ctx context.Context, id string) (*schemas.Post, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, storage.ErrNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}}}

	var post schemas.Post
	err = s.posts().FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, opts).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// DeletePost removes the post and cascades to every comment carrying its
// post_id, in one transaction. No comment of another post is touched.
func (s *Store) DeletePost(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	_, err = s.withTransaction(ctx, func(ctx context.Context) (any, error) {
		if _, err := s.posts().DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}}); err != nil {
			return nil, err
		}

		if _, err := s.comments().DeleteMany(ctx, bson.D{{Key: "post_id", Value: oid.Hex()}}); err != nil {
			return nil, err
		}

		return nil, nil
	})
	return err
}

func (s *Store) CreateComment(ctx context.Context, comment *schemas.Comment) (string, error) {
	comment.ID = bson.NewObjectID()
	comment.CreatedAt = time.Now().UTC()

	if _, err := s.comments().InsertOne(ctx, comment); err != nil {
		return "", err
	}

	return comment.ID.Hex(), nil
}

// ListComments is oldest-first, the opposite of every other listing.
func (s *Store) ListComments(ctx context.Context, postID string) ([]schemas.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	filter := bson.D{{Key: "post_id", Value: postID}}

	cursor, err := s.comments().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := []schemas.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}

	return comments, nil
}
