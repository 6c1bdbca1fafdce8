package presence

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

func TestCreateOne_RegistersSession(t *testing.T) {
	handler, store := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/admin/sessions", strings.NewReader(
		`{"browser":"Firefox on Linux"}`))
	rec := httptest.NewRecorder()
	handler.CreateOne(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	sessionID, _ := body["sessionId"].(string)
	require.NotEmpty(t, sessionID)

	sessions, err := store.ListSessions(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, sessionID, sessions[0].ID)
	assert.Equal(t, "Firefox on Linux", sessions[0].Browser)
	assert.Equal(t, sessions[0].LoginTime, sessions[0].LastActive)
}

func TestHeartbeatAndLogout(t *testing.T) {
	handler, store := newTestHandler()
	ctx := context.Background()

	session := &schemas.AdminSession{ID: "tok-1", Browser: "Chrome"}
	require.NoError(t, store.CreateSession(ctx, session))

	req := httptest.NewRequest(http.MethodPost, "/admin/sessions/tok-1/heartbeat", nil)
	req.SetPathValue("id", "tok-1")
	rec := httptest.NewRecorder()
	handler.Heartbeat(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/admin/sessions/tok-1", nil)
	req.SetPathValue("id", "tok-1")
	rec = httptest.NewRecorder()
	handler.DeleteOne(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	sessions, err := store.ListSessions(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 0)

	// A late heartbeat from the closed tab must not fail.
	req = httptest.NewRequest(http.MethodPost, "/admin/sessions/tok-1/heartbeat", nil)
	req.SetPathValue("id", "tok-1")
	rec = httptest.NewRecorder()
	handler.Heartbeat(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetAll_ReturnsLiveSet(t *testing.T) {
	handler, store := newTestHandler()
	ctx := context.Background()

	require.NoError(t, store.CreateSession(ctx, &schemas.AdminSession{ID: "tok-1", Browser: "Chrome"}))

	req := httptest.NewRequest(http.MethodGet, "/admin/sessions", nil)
	rec := httptest.NewRecorder()
	handler.GetAll(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Sessions []schemas.AdminSession `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Sessions, 1)
	assert.Equal(t, "tok-1", body.Sessions[0].ID)
}
