package scripture

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imani-cms/imani_backend/internal/apperrors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, nil)
}

func TestGetChapterParsesVerses(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/John%203", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{
			"reference": "John 3",
			"verses": [
				{"verse": 1, "text": "There was a man of the Pharisees...\n"},
				{"verse": 2, "text": "The same came to Jesus by night..."}
			]
		}`))
	})

	resp, err := client.GetChapter(context.Background(), "John", 3)
	require.NoError(t, err)
	assert.Equal(t, "John 3", resp.Reference)
	require.Len(t, resp.Verses, 2)
	assert.Equal(t, 1, resp.Verses[0].Number)
	assert.Equal(t, "There was a man of the Pharisees...", resp.Verses[0].Text)
}

func TestGetChapterRejectsBadInput(t *testing.T) {
	client := NewClient("http://unused", nil)

	_, err := client.GetChapter(context.Background(), "", 1)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = client.GetChapter(context.Background(), "John", 0)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGetChapterMapsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetChapter(context.Background(), "Unknownia", 7)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetChapterMapsUpstreamFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetChapter(context.Background(), "John", 3)
	assert.ErrorIs(t, err, apperrors.ErrServiceUnavailable)
}

func TestGetChapterWithNoVersesIsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"reference": "John 99", "verses": []}`))
	})

	_, err := client.GetChapter(context.Background(), "John", 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
