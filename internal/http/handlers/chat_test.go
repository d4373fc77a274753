package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiegoAltamirano13/IA-MARKETING/internal/bot"
	"github.com/DiegoAltamirano13/IA-MARKETING/internal/directory"
	"github.com/DiegoAltamirano13/IA-MARKETING/internal/services"
	"github.com/DiegoAltamirano13/IA-MARKETING/internal/session"
	"github.com/DiegoAltamirano13/IA-MARKETING/pkg/logging"
)

func newTestHandler(t *testing.T) (*ChatHandler, *session.Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessions := session.NewStore(client, 24*time.Hour, 10*time.Minute, logging.Default())

	logger := logging.Default()
	locations := directory.NewResponder(nil, sessions, logger)
	svc := services.NewResponder(sessions, logger)
	router := bot.NewRouter(sessions, nil, locations, svc, nil, logger)
	return NewChatHandler(router, logger), sessions
}

func TestChatReturnsReply(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hola","user_id":"u1"}`))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Response)
}

func TestChatDefaultsUserID(t *testing.T) {
	h, sessions := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hola"}`))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, sessions.History(req.Context(), "default"))
}

func TestChatRejectsMalformedBody(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":`))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestHealthCheck(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.HealthCheck(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}
