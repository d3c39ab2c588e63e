package survey_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gong8/sentinel-site/modules/survey"
)

type fakeStore struct {
	saved []survey.Submission
	err   error
}

func (s *fakeStore) Save(_ context.Context, sub survey.Submission) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, sub)
	return nil
}

func newHandler(t *testing.T, store survey.Store) http.Handler {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return survey.NewService(store, log).Handle()
}

func post(t *testing.T, handler http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestSubmit(t *testing.T) {
	t.Parallel()

	t.Run("full submission", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{}
		rec := post(t, newHandler(t, store), map[string]string{
			"email":       "leaver@example.com",
			"reason":      "too_expensive",
			"feedback":    "Pricing doubled since I signed up",
			"wouldReturn": "maybe",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, store.saved, 1)

		sub := store.saved[0]
		assert.Equal(t, "leaver@example.com", sub.Email)
		assert.Equal(t, "too_expensive", sub.Reason)
		assert.Equal(t, "maybe", sub.WouldReturn)
		assert.NotZero(t, sub.ID)
		assert.False(t, sub.CreatedAt.IsZero())
	})

	t.Run("reason alone is enough", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{}
		rec := post(t, newHandler(t, store), map[string]string{"reason": "other"})

		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, store.saved, 1)
		assert.Empty(t, store.saved[0].Email)
		assert.Empty(t, store.saved[0].WouldReturn)
	})

	t.Run("missing reason", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{}
		rec := post(t, newHandler(t, store), map[string]string{"feedback": "bye"})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Please select a reason for leaving.")
		assert.Empty(t, store.saved)
	})

	t.Run("unknown reason", func(t *testing.T) {
		t.Parallel()

		rec := post(t, newHandler(t, &fakeStore{}), map[string]string{"reason": "alien_invasion"})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Please select a reason for leaving.")
	})

	t.Run("unknown return answer", func(t *testing.T) {
		t.Parallel()

		rec := post(t, newHandler(t, &fakeStore{}), map[string]string{
			"reason":      "other",
			"wouldReturn": "definitely",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store failure returns generic error", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{err: errors.New("connection reset")}
		rec := post(t, newHandler(t, store), map[string]string{"reason": "other"})

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Failed to submit survey. Please try again.")
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})

	t.Run("method not allowed", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		newHandler(t, &fakeStore{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
