package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestServer(t *testing.T, routes map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	for pattern, h := range routes {
		mux.HandleFunc(pattern, h)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestClient_Stats(t *testing.T) {
	srv := newTestServer(t, map[string]http.HandlerFunc{
		"GET " + PathStats: writeJSON(`{
			"total_messages": 10,
			"total_searches": 4,
			"total_users": 42,
			"recent_messages": [
				{"chat_id": 5123456789, "direction": "incoming", "text": "hi", "timestamp": "2024-05-01T10:20:30.123456"}
			],
			"recent_searches": [
				{"chat_id": 1, "query": "+79123456789", "results_count": 3, "attempts_used": 1, "timestamp": "2024-05-01T10:20:30"}
			],
			"top_users": [{"_id": 77, "count": 9}]
		}`),
	})

	c := NewClient(srv.URL)
	stats, err := c.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, stats.TotalMessages)
	assert.Equal(t, 42, stats.TotalUsers)
	assert.Equal(t, 0, stats.TotalReferrals)
	require.Len(t, stats.RecentMessages, 1)
	assert.Equal(t, "5123456789", stats.RecentMessages[0].ChatID.String())
	assert.Equal(t, DirectionIncoming, stats.RecentMessages[0].Direction)
	assert.False(t, stats.RecentMessages[0].Timestamp.IsZero())
	require.Len(t, stats.RecentSearches, 1)
	assert.True(t, stats.RecentSearches[0].HasDeduction())
	require.Len(t, stats.TopUsers, 1)
	assert.Equal(t, "77", stats.TopUsers[0].ID.String())
}

func TestClient_UsersAndReferrals(t *testing.T) {
	srv := newTestServer(t, map[string]http.HandlerFunc{
		"GET " + PathUsers: writeJSON(`{"users": [
			{"user_id": 1, "username": "ivan", "first_name": "Иван", "free_attempts": 3, "referral_code": "ABC", "created_at": "2024-01-01T00:00:00"},
			{"user_id": 2}
		]}`),
		"GET " + PathReferrals: writeJSON(`{"referrals": [
			{"referrer_id": 1, "referred_id": 2, "referral_code": "ABC", "timestamp": "2024-01-02T00:00:00"}
		]}`),
	})

	c := NewClient(srv.URL + "/")
	users, err := c.Users(context.Background())
	require.NoError(t, err)
	require.Len(t, users.Users, 2)
	assert.Equal(t, "ivan", users.Users[0].Username)
	assert.Equal(t, "", users.Users[1].Username)
	assert.Equal(t, 0, users.Users[1].TotalSearches)

	refs, err := c.Referrals(context.Background())
	require.NoError(t, err)
	require.Len(t, refs.Referrals, 1)
	assert.Equal(t, "2", refs.Referrals[0].ReferredID.String())
}

func TestClient_SetWebhook(t *testing.T) {
	var gotMethod string
	var gotBody int64
	srv := newTestServer(t, map[string]http.HandlerFunc{
		PathSetWebhook: func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotBody = r.ContentLength
			writeJSON(`{"status": "success", "webhook_url": "https://example.test/api/webhook"}`)(w, r)
		},
	})

	res, err := NewClient(srv.URL).SetWebhook(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.LessOrEqual(t, gotBody, int64(0), "no request body is sent")
	assert.True(t, res.OK())
	assert.Equal(t, "https://example.test/api/webhook", res.WebhookURL)
}

func TestClient_TestUsersbox(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantOK      bool
		wantBalance string
		hasBalance  bool
	}{
		{
			name:        "balance reported",
			body:        `{"status": "success", "data": {"status": "success", "data": {"balance": 125.5}}}`,
			wantOK:      true,
			wantBalance: "125.5",
			hasBalance:  true,
		},
		{
			name:        "whole balance",
			body:        `{"status": "success", "data": {"data": {"balance": 0}}}`,
			wantOK:      true,
			wantBalance: "0",
			hasBalance:  true,
		},
		{
			name:   "no balance",
			body:   `{"status": "success", "data": {}}`,
			wantOK: true,
		},
		{
			name: "collaborator error",
			body: `{"status": "error", "message": "401 Unauthorized"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, map[string]http.HandlerFunc{
				"POST " + PathTestUsersbox: writeJSON(tt.body),
			})
			res, err := NewClient(srv.URL).TestUsersbox(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, res.OK())
			balance, ok := res.Balance()
			assert.Equal(t, tt.hasBalance, ok)
			assert.Equal(t, tt.wantBalance, balance)
		})
	}
}

func TestClient_StatusError(t *testing.T) {
	srv := newTestServer(t, map[string]http.HandlerFunc{
		"GET " + PathStats: func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"detail": "database unavailable"}`))
		},
	})

	stats, err := NewClient(srv.URL).Stats(context.Background())
	require.Error(t, err)
	assert.Nil(t, stats)

	var serr *StatusError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, http.StatusInternalServerError, serr.StatusCode)
	assert.Equal(t, "database unavailable", serr.Detail)
	assert.Contains(t, err.Error(), "database unavailable")
}

func TestClient_DecodeError(t *testing.T) {
	srv := newTestServer(t, map[string]http.HandlerFunc{
		"GET " + PathUsers: func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(`<html>bad gateway</html>`))
		},
	})

	users, err := NewClient(srv.URL).Users(context.Background())
	require.Error(t, err)
	assert.Nil(t, users)
	assert.Contains(t, err.Error(), "decode "+PathUsers)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).SetWebhook(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), PathSetWebhook)
}

func TestClient_RecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	srv := newTestServer(t, map[string]http.HandlerFunc{
		"GET " + PathReferrals: writeJSON(`{"referrals": []}`),
	})

	c := NewClient(srv.URL, WithTracer(tp.Tracer("test")))
	ctx := WithRequestID(context.Background(), "req-1")
	_, err := c.Referrals(ctx)
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "botdash.api "+PathReferrals, spans[0].Name())

	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "req-1", attrs["botdash.request_id"])
	assert.Equal(t, "200", attrs["http.status_code"])
}
