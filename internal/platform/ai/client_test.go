package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/dto"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-key", "test-model")
}

func candidateJSON(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":` + text + `}]}}]}`
}

func TestSermonOutlineReturnsCandidateText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "test-model")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(candidateJSON(`"1. Faith\n2. Hope"`)))
	})

	text, err := client.SermonOutline(context.Background(), dto.SermonOutlineRequest{Topic: "Faith"})
	require.NoError(t, err)
	assert.Equal(t, "1. Faith\n2. Hope", text)
}

func TestGenerateRetriesOnceThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(candidateJSON(`"recovered"`)))
	})

	text, err := client.DailyVerse(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGenerateGivesUpAfterRetry(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.DailyVerse(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrServiceUnavailable)
	assert.Equal(t, int32(2), calls.Load())
}

func TestMissingAPIKeyShortCircuits(t *testing.T) {
	client := NewClient("http://unused", "", "test-model")

	_, err := client.DailyVerse(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrServiceUnavailable)
}

func TestFinancialInsightParsesStructuredPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(candidateJSON(`"{\"summary\":\"Healthy surplus.\",\"recommendations\":[\"Build a reserve fund\"]}"`)))
	})

	insight, err := client.FinancialInsight(context.Background(), "income 2000, expense 500")
	require.NoError(t, err)
	assert.Equal(t, "Healthy surplus.", insight.Summary)
	assert.Equal(t, []string{"Build a reserve fund"}, insight.Recommendations)
}

func TestFinancialInsightRejectsMalformedPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(candidateJSON(`"not json at all"`)))
	})

	_, err := client.FinancialInsight(context.Background(), "income 0")
	assert.ErrorIs(t, err, apperrors.ErrServiceUnavailable)
}
