package storage

import (
	"context"
	"errors"

	"api/schemas"
)

// ErrNotFound is returned when a detail lookup misses. Partial updates and
// deletes of unknown ids are deliberately no-op successes (the document
// store does not error on them); RestoreArchived is the exception because it
// must read the document anyway.
var ErrNotFound = errors.New("document not found")

// Store is the document-store surface the handlers run on. The mongodb
// package implements it for real; the memory package is its in-process twin
// used by tests.
type Store interface {
	// Applications (active collection).
	CreateApplication(ctx context.Context, app *schemas.Application) (string, error)
	ListApplications(ctx context.Context, status string) ([]schemas.Application, error)
	UpdateApplication(ctx context.Context, id string, fields map[string]any) error
	DeleteApplication(ctx context.Context, id string) error

	// Archive. ArchiveCompleted and RestoreArchived are atomic: a failure
	// mid-batch leaves both collections untouched.
	ArchiveCompleted(ctx context.Context) (int, error)
	ListArchived(ctx context.Context) ([]schemas.Application, error)
	RestoreArchived(ctx context.Context, id string) error
	DeleteArchived(ctx context.Context, id string) error

	// Catalog, reviews, aggregate counters.
	ListProducts(ctx context.Context) ([]schemas.Product, error)
	CreateProduct(ctx context.Context, product *schemas.Product) error
	ListReviews(ctx context.Context) ([]schemas.Review, error)
	CreateReview(ctx context.Context, review *schemas.Review) (string, error)
	Stats(ctx context.Context) (*schemas.Stats, error)

	// Board. GetPost atomically increments the view counter before reading.
	// DeletePost removes the post and every comment with its post_id in one
	// batch.
	CreatePost(ctx context.Context, post *schemas.Post) (string, error)
	ListPosts(ctx context.Context) ([]schemas.PostSummary, error)
	GetPost(ctx context.Context, id string) (*schemas.Post, error)
	DeletePost(ctx context.Context, id string) error
	CreateComment(ctx context.Context, comment *schemas.Comment) (string, error)
	ListComments(ctx context.Context, postID string) ([]schemas.Comment, error)

	// Settings singleton. GetSettings falls back to an empty prefix when the
	// document does not exist yet.
	GetSettings(ctx context.Context) (*schemas.Settings, error)
	UpdateSettings(ctx context.Context, customPrefix string) (*schemas.Settings, error)

	// Presence registry. Each session document has exactly one writer.
	CreateSession(ctx context.Context, session *schemas.AdminSession) error
	TouchSession(ctx context.Context, id string) error
	DeleteSession(ctx context.Context, id string) error
	ListSessions(ctx context.Context) ([]schemas.AdminSession, error)
}
