// Package memory is an in-process storage.Store used by tests. Batched
// operations apply under one lock so they are all-or-nothing, and a
// fail-next-batch hook simulates a commit failure mid-batch.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"api/schemas"
	"api/storage"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var errBatchFailed = errors.New("simulated batch commit failure")

type Store struct {
	mu sync.Mutex

	applications map[string]schemas.Application
	archived     map[string]schemas.Application
	products     map[string]schemas.Product
	reviews      map[string]schemas.Review
	posts        map[string]schemas.Post
	comments     map[string]schemas.Comment
	settings     *schemas.Settings
	sessions     map[string]schemas.AdminSession

	failNextBatch bool
}

func New() *Store {
	return &Store{
		applications: map[string]schemas.Application{},
		archived:     map[string]schemas.Application{},
		products:     map[string]schemas.Product{},
		reviews:      map[string]schemas.Review{},
		posts:        map[string]schemas.Post{},
		comments:     map[string]schemas.Comment{},
		sessions:     map[string]schemas.AdminSession{},
	}
}

// FailNextBatch makes the next batched operation (archive-all, restore-one,
// post cascade delete) fail before committing anything.
func (s *Store) FailNextBatch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNextBatch = true
}

func (s *Store) consumeBatchFailure() bool {
	failed := s.failNextBatch
	s.failNextBatch = false
	return failed
}

func (s *Store) CreateApplication(_ context.Context, app *schemas.Application) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	app.ID = bson.NewObjectID()
	app.Status = schemas.StatusPending
	app.CreatedAt = time.Now().UTC()
	app.ArchivedAt = nil

	s.applications[app.ID.Hex()] = *app
	return app.ID.Hex(), nil
}

func (s *Store) ListApplications(_ context.Context, status string) ([]schemas.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps := []schemas.Application{}
	for _, app := range s.applications {
		if status != "" && app.Status != status {
			continue
		}
		apps = append(apps, app)
	}
	return apps, nil
}

func (s *Store) UpdateApplication(_ context.Context, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	app, ok := s.applications[id]
	if !ok {
		return nil
	}

	for key, value := range fields {
		str, _ := value.(string)
		switch key {
		case "status":
			app.Status = str
		case "preferred_date":
			app.PreferredDate = str
		case "preferred_time":
			app.PreferredTime = str
		case "memo":
			app.Memo = str
		}
	}

	s.applications[id] = app
	return nil
}

func (s *Store) DeleteApplication(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.applications, id)
	return nil
}

func (s *Store) ArchiveCompleted(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.consumeBatchFailure() {
		return 0, errBatchFailed
	}

	now := time.Now().UTC()
	count := 0
	for id, app := range s.applications {
		if app.Status != schemas.StatusCompleted {
			continue
		}
		archivedAt := now
		app.ArchivedAt = &archivedAt
		s.archived[id] = app
		delete(s.applications, id)
		count++
	}

	return count, nil
}

func (s *Store) ListArchived(_ context.Context) ([]schemas.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps := []schemas.Application{}
	for _, app := range s.archived {
		apps = append(apps, app)
	}
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].ArchivedAt.After(*apps[j].ArchivedAt)
	})
	return apps, nil
}

func (s *Store) RestoreArchived(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	app, ok := s.archived[id]
	if !ok {
		return storage.ErrNotFound
	}

	if s.consumeBatchFailure() {
		return errBatchFailed
	}

	app.ArchivedAt = nil
	s.applications[id] = app
	delete(s.archived, id)
	return nil
}

func (s *Store) DeleteArchived(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.archived, id)
	return nil
}

func (s *Store) ListProducts(_ context.Context) ([]schemas.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := []schemas.Product{}
	for _, product := range s.products {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (s *Store) CreateProduct(_ context.Context, product *schemas.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products[product.DocID] = *product
	return nil
}

func (s *Store) ListReviews(_ context.Context) ([]schemas.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reviews := []schemas.Review{}
	for _, review := range s.reviews {
		reviews = append(reviews, review)
	}
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}

func (s *Store) CreateReview(_ context.Context, review *schemas.Review) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	review.ID = bson.NewObjectID()
	review.CreatedAt = time.Now().UTC()
	s.reviews[review.ID.Hex()] = *review
	return review.ID.Hex(), nil
}

func (s *Store) Stats(_ context.Context) (*schemas.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &schemas.Stats{TotalReviews: int64(len(s.reviews))}
	for _, app := range s.applications {
		stats.TotalApplications++
		switch app.Status {
		case schemas.StatusPending:
			stats.PendingApplications++
		case schemas.StatusCompleted:
			stats.CompletedApplications++
		}
	}
	return stats, nil
}

func (s *Store) CreatePost(_ context.Context, post *schemas.Post) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post.ID = bson.NewObjectID()
	post.Views = 0
	post.CreatedAt = time.Now().UTC()
	s.posts[post.ID.Hex()] = *post
	return post.ID.Hex(), nil
}

func (s *Store) ListPosts(_ context.Context) ([]schemas.PostSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := []schemas.PostSummary{}
	for id, post := range s.posts {
		count := 0
		for _, comment := range s.comments {
			if comment.PostID == id {
				count++
			}
		}
		summaries = append(summaries, schemas.PostSummary{
			ID:           post.ID,
			Title:        post.Title,
			Author:       post.Author,
			Views:        post.Views,
			CreatedAt:    post.CreatedAt,
			CommentCount: count,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].CreatedAt.Equal(summaries[j].CreatedAt) {
			return summaries[i].ID.Hex() > summaries[j].ID.Hex()
		}
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	return summaries, nil
}

func (s *Store) GetPost(_ context.Context, id string) (*schemas.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	post.Views++
	s.posts[id] = post
	return &post, nil
}

func (s *Store) DeletePost(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.consumeBatchFailure() {
		return errBatchFailed
	}

	delete(s.posts, id)
	for commentID, comment := range s.comments {
		if comment.PostID == id {
			delete(s.comments, commentID)
		}
	}
	return nil
}

func (s *Store) CreateComment(_ context.Context, comment *schemas.Comment) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment.ID = bson.NewObjectID()
	comment.CreatedAt = time.Now().UTC()
	s.comments[comment.ID.Hex()] = *comment
	return comment.ID.Hex(), nil
}

func (s *Store) ListComments(_ context.Context, postID string) ([]schemas.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comments := []schemas.Comment{}
	for _, comment := range s.comments {
		if comment.PostID == postID {
			comments = append(comments, comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].ID.Hex() < comments[j].ID.Hex()
		}
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}

func (s *Store) GetSettings(_ context.Context) (*schemas.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settings == nil {
		return &schemas.Settings{CustomPrefix: ""}, nil
	}
	settings := *s.settings
	return &settings, nil
}

func (s *Store) UpdateSettings(_ context.Context, customPrefix string) (*schemas.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = &schemas.Settings{CustomPrefix: customPrefix, UpdatedAt: time.Now().UTC()}
	settings := *s.settings
	return &settings, nil
}

func (s *Store) CreateSession(_ context.Context, session *schemas.AdminSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	session.LoginTime = now
	session.LastActive = now
	s.sessions[session.ID] = *session
	return nil
}

func (s *Store) TouchSession(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil
	}
	session.LastActive = time.Now().UTC()
	s.sessions[id] = session
	return nil
}

func (s *Store) DeleteSession(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

func (s *Store) ListSessions(_ context.Context) ([]schemas.AdminSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := []schemas.AdminSession{}
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	return sessions, nil
}
