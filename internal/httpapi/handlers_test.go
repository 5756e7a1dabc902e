package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arogyamitra/arogya-bot/internal/storage"
)

var errStoreDown = errors.New("store down")

type stubResponder struct {
	parts []string
	last  string
}

func (s *stubResponder) Answer(_ context.Context, text string) []string {
	s.last = text

	return s.parts
}

type stubStore struct {
	created   []*storage.Subscriber
	createErr error
	stats     storage.Stats
	statsErr  error
}

func (s *stubStore) CreateSubscriber(_ context.Context, sub *storage.Subscriber) error {
	if s.createErr != nil {
		return s.createErr
	}

	s.created = append(s.created, sub)

	return nil
}

func (s *stubStore) CountSubscribers(_ context.Context) (storage.Stats, error) {
	return s.stats, s.statsErr
}

type recordingSender struct {
	sent []string
	to   []string
}

func (s *recordingSender) Send(_ context.Context, to, text string) error {
	s.to = append(s.to, to)
	s.sent = append(s.sent, text)

	return nil
}

func newTestServer(responder *stubResponder, store *stubStore, sender *recordingSender) *Server {
	nop := zerolog.Nop()

	return NewServer(responder, store, sender, 0, &nop)
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestWebhookRepliesWithParts(t *testing.T) {
	responder := &stubResponder{parts: []string{"part one", "part two"}}
	srv := newTestServer(responder, &stubStore{}, &recordingSender{})

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/webhook", map[string]string{
		"from": "911234567890",
		"body": "dengue in kerala",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp webhookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "911234567890", resp.To)
	assert.Equal(t, []string{"part one", "part two"}, resp.Parts)
	assert.Equal(t, "dengue in kerala", responder.last)
}

func TestWebhookEmptyBodyRejected(t *testing.T) {
	srv := newTestServer(&stubResponder{}, &stubStore{}, &recordingSender{})

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/webhook", map[string]string{
		"from": "911234567890",
		"body": "   ",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterSuccess(t *testing.T) {
	store := &stubStore{}
	sender := &recordingSender{}
	srv := newTestServer(&stubResponder{}, store, sender)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/register", map[string]string{
		"name":   "Asha",
		"phone":  "911234567890",
		"region": "Kerala",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, store.created, 1)
	assert.Equal(t, storage.FrequencyDaily, store.created[0].Frequency, "frequency defaults to daily")

	require.Len(t, sender.sent, 1, "welcome message sent")
	assert.Contains(t, sender.sent[0], "Asha")
	assert.Equal(t, "911234567890", sender.to[0])
}

func TestRegisterDuplicatePhone(t *testing.T) {
	store := &stubStore{createErr: storage.ErrDuplicatePhone}
	sender := &recordingSender{}
	srv := newTestServer(&stubResponder{}, store, sender)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/register", map[string]string{
		"name":  "Asha",
		"phone": "911234567890",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exists")
	assert.Empty(t, sender.sent, "no welcome message on conflict")
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]string
	}{
		{name: "missing name", body: map[string]string{"phone": "911234567890"}},
		{name: "missing phone", body: map[string]string{"name": "Asha"}},
		{name: "bad frequency", body: map[string]string{"name": "Asha", "phone": "911234567890", "frequency": "hourly"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubStore{}
			srv := newTestServer(&stubResponder{}, store, &recordingSender{})

			rec := doJSON(t, srv.Handler(), http.MethodPost, "/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, store.created)
		})
	}
}

func TestRegisterPersistenceFailure(t *testing.T) {
	store := &stubStore{createErr: errStoreDown}
	srv := newTestServer(&stubResponder{}, store, &recordingSender{})

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/register", map[string]string{
		"name":  "Asha",
		"phone": "911234567890",
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestStats(t *testing.T) {
	store := &stubStore{stats: storage.Stats{Total: 5, Daily: 3, Weekly: 2}}
	srv := newTestServer(&stubResponder{}, store, &recordingSender{})

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/stats", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp["total"])
	assert.Equal(t, int64(3), resp["daily"])
	assert.Equal(t, int64(2), resp["weekly"])
}

func TestStatsPersistenceFailure(t *testing.T) {
	store := &stubStore{statsErr: errStoreDown}
	srv := newTestServer(&stubResponder{}, store, &recordingSender{})

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/stats", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
