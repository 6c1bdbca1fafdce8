package archive

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
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

func completedApp(t *testing.T, store *memory.Store, name string) string {
	t.Helper()
	ctx := context.Background()
	id, err := store.CreateApplication(ctx, &schemas.Application{Name: name, Phone: "010", Address: "Seoul"})
	require.NoError(t, err)
	require.NoError(t, store.UpdateApplication(ctx, id, map[string]any{"status": schemas.StatusCompleted}))
	return id
}

func TestArchiveCompleted_ReturnsCount(t *testing.T) {
	handler, store := newTestHandler()

	completedApp(t, store, "A")
	completedApp(t, store, "B")

	req := httptest.NewRequest(http.MethodPost, "/applications/archive", nil)
	rec := httptest.NewRecorder()
	handler.ArchiveCompleted(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["archivedCount"])
}

func TestArchiveCompleted_EmptyIsSuccess(t *testing.T) {
	handler, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/applications/archive", nil)
	rec := httptest.NewRecorder()
	handler.ArchiveCompleted(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(0), body["archivedCount"])
}

func TestRestoreOne_NotFound(t *testing.T) {
	handler, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/archived-applications/missing/restore", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	handler.RestoreOne(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}

func TestRestoreOne_RoundTrip(t *testing.T) {
	handler, store := newTestHandler()
	ctx := context.Background()

	id := completedApp(t, store, "Kim")
	_, err := store.ArchiveCompleted(ctx)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/archived-applications/"+id+"/restore", nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	handler.RestoreOne(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	active, err := store.ListApplications(ctx, "")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, schemas.StatusCompleted, active[0].Status)
	assert.Nil(t, active[0].ArchivedAt)
}

func TestDeleteOne_ArchiveOnly(t *testing.T) {
	handler, store := newTestHandler()
	ctx := context.Background()

	id := completedApp(t, store, "Kim")
	_, err := store.ArchiveCompleted(ctx)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/archived-applications/"+id, nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	handler.DeleteOne(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	archived, err := store.ListArchived(ctx)
	require.NoError(t, err)
	assert.Len(t, archived, 0)
}
