package recoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClient_FetchComplete(t *testing.T) {
	t.Run("returns decoded payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/recommendations/complete/eco123", r.URL.Path)
			require.Equal(t, "5", r.URL.Query().Get("similar_limit"))
			require.Equal(t, "6", r.URL.Query().Get("related_limit"))
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"similar": map[string]any{"similar_articles": []any{map[string]any{"article_id": "eco200"}}},
				"topics":  map[string]any{"related_topics": []any{}},
			})
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "", "", time.Second, time.Millisecond)

		payload, err := client.FetchComplete(context.Background(), "eco123", 5, 6)

		require.NoError(t, err)
		require.Contains(t, payload, "similar")
		require.Contains(t, payload, "topics")
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "", "", time.Second, time.Millisecond)

		_, err := client.FetchComplete(context.Background(), "eco123", 5, 6)

		require.Error(t, err)
	})

	t.Run("timeout is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "", "", 20*time.Millisecond, time.Millisecond)

		_, err := client.FetchComplete(context.Background(), "eco123", 5, 6)

		require.Error(t, err)
	})

	t.Run("unconfigured base is an error", func(t *testing.T) {
		client := NewClient("", "", "", time.Second, time.Millisecond)

		_, err := client.FetchComplete(context.Background(), "eco123", 5, 6)

		require.Error(t, err)
	})
}

func TestClient_AnalyzeAndCleanse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "eco123", body["article_id"])

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/analyze":
			json.NewEncoder(w).Encode(map[string]any{"sentiment": "긍정적", "confidence": 88})
		case "/cleanse":
			json.NewEncoder(w).Encode(map[string]any{"summary": "요약", "cleaned_html": "<p>본문</p>"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewClient("", srv.URL, srv.URL, time.Second, time.Millisecond)

	senti, err := client.Analyze(context.Background(), "eco123", "본문 텍스트")
	require.NoError(t, err)
	require.Equal(t, "긍정적", senti["sentiment"])

	clnz, err := client.Cleanse(context.Background(), "eco123", "본문 텍스트")
	require.NoError(t, err)
	require.Equal(t, "요약", clnz["summary"])
}
