package posts

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"api/schemas"
	"api/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() (*Handler, *memory.Store) {
	store := memory.New()
	return NewHandler(store, slog.New(slog.DiscardHandler)), store
}

func TestCreateOne_DefaultsViewsToZero(t *testing.T) {
	handler, store := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(
		`{"title":"Great service","content":"Recommended","author":"kim","password":"1234","rating":5}`))
	rec := httptest.NewRecorder()
	handler.CreateOne(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	id, _ := body["postId"].(string)
	require.NotEmpty(t, id)

	posts, err := store.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, 0, posts[0].Views)
}

func TestGetOne_IncrementsViews(t *testing.T) {
	handler, store := newTestHandler()

	id, err := store.CreatePost(context.Background(), &schemas.Post{Title: "t", Content: "c", Author: "a"})
	require.NoError(t, err)

	for want := 1; want <= 3; want++ {
		req := httptest.NewRequest(http.MethodGet, "/posts/"+id, nil)
		req.SetPathValue("id", id)
		rec := httptest.NewRecorder()
		handler.GetOne(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Post schemas.Post `json:"post"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, want, body.Post.Views)
	}
}

func TestGetOne_NotFound(t *testing.T) {
	handler, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/posts/missing", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	handler.GetOne(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAll_CommentCounts(t *testing.T) {
	handler, store := newTestHandler()
	ctx := context.Background()

	_, err := store.CreatePost(ctx, &schemas.Post{Title: "quiet", Content: "c", Author: "a"})
	require.NoError(t, err)
	busyID, err := store.CreatePost(ctx, &schemas.Post{Title: "busy", Content: "c", Author: "a"})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := store.CreateComment(ctx, &schemas.Comment{PostID: busyID, Author: "x", Content: "hi"})
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	rec := httptest.NewRecorder()
	handler.GetAll(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Posts []schemas.PostSummary `json:"posts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Posts, 2)

	counts := map[string]int{}
	for _, post := range body.Posts {
		counts[post.Title] = post.CommentCount
	}
	assert.Equal(t, 0, counts["quiet"])
	assert.Equal(t, 3, counts["busy"])
}

func TestDeleteOne_Cascades(t *testing.T) {
	handler, store := newTestHandler()
	ctx := context.Background()

	id, err := store.CreatePost(ctx, &schemas.Post{Title: "t", Content: "c", Author: "a"})
	require.NoError(t, err)
	_, err = store.CreateComment(ctx, &schemas.Comment{PostID: id, Author: "x", Content: "hi"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/posts/"+id, nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	handler.DeleteOne(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	comments, err := store.ListComments(ctx, id)
	require.NoError(t, err)
	assert.Len(t, comments, 0)
}

func TestComments_CreateAndListOldestFirst(t *testing.T) {
	handler, store := newTestHandler()
	ctx := context.Background()

	id, err := store.CreatePost(ctx, &schemas.Post{Title: "t", Content: "c", Author: "a"})
	require.NoError(t, err)

	for _, content := range []string{"first", "second"} {
		req := httptest.NewRequest(http.MethodPost, "/posts/"+id+"/comments", strings.NewReader(
			`{"author":"kim","content":"`+content+`"}`))
		req.SetPathValue("id", id)
		rec := httptest.NewRecorder()
		handler.CreateComment(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/posts/"+id+"/comments", nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	handler.GetComments(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Comments []schemas.Comment `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Comments, 2)
	assert.Equal(t, "first", body.Comments[0].Content)
	assert.Equal(t, "second", body.Comments[1].Content)
}
