package librarian_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venoajie/trading-web-project/src/clients/librarian"
	"github.com/venoajie/trading-web-project/src/config"
	"github.com/venoajie/trading-web-project/src/models"
	"github.com/venoajie/trading-web-project/src/utils"
	"github.com/venoajie/trading-web-project/src/utils/secrets"
)

func newTestClient(url string) *librarian.LibrarianServiceClient {
	return librarian.NewClientWithKey(url, "test-key", config.LibrarianConfig{TimeoutSeconds: 5})
}

func TestLibrarianQuery(t *testing.T) {
	ctx := utils.WithLogger(context.Background(), utils.NewDiscardLogger())

	t.Run("200 response is returned verbatim", func(t *testing.T) {
		var received map[string]interface{}
		var authHeader string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&received)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"answer":"X","sources":[{"title":"10-K"}],"latency_ms":12}`))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)
		defer client.Close()

		resp, err := client.Query(ctx, "user-1", "What is AAPL?", nil)
		require.NoError(t, err)

		assert.Equal(t, "Bearer test-key", authHeader)
		assert.Equal(t, "What is AAPL?", received["prompt"])
		assert.Equal(t, "user-1", received["user_id"])
		assert.Equal(t, []interface{}{}, received["conversation_history"])

		answer, ok := resp.Answer()
		assert.True(t, ok)
		assert.Equal(t, "X", answer)
		assert.Equal(t, []map[string]interface{}{{"title": "10-K"}}, resp.Sources())
		assert.Equal(t, float64(12), resp["latency_ms"])
	})

	t.Run("history is forwarded in order", func(t *testing.T) {
		var received librarian.QueryRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&received)
			_, _ = w.Write([]byte(`{"answer":"ok"}`))
		}))
		defer srv.Close()

		history := []models.ChatMessage{
			{Role: models.RoleUser, Content: "hi"},
			{Role: models.RoleAssistant, Content: "hello"},
		}
		_, err := newTestClient(srv.URL).Query(ctx, "user-1", "next", history)
		require.NoError(t, err)
		assert.Equal(t, history, received.ConversationHistory)
	})

	t.Run("non-200 maps to 503", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "index offline", http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).Query(ctx, "user-1", "P", nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, utils.StatusCode(err))
		assert.Equal(t, "The AI service is currently unavailable.", err.Error())
	})

	t.Run("unreadable body maps to 503", func(t *testing.T) {
		for _, body := range []string{"<html>", "null", "[1,2]"} {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))

			_, err := newTestClient(srv.URL).Query(ctx, "user-1", "P", nil)
			srv.Close()

			require.Error(t, err, body)
			assert.Equal(t, http.StatusServiceUnavailable, utils.StatusCode(err), body)
		}
	})

	t.Run("connection failure maps to 503", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		_, err := newTestClient(url).Query(ctx, "user-1", "P", nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, utils.StatusCode(err))
		assert.Equal(t, "Error connecting to the AI service.", err.Error())
	})
}

func TestLibrarianClientLifecycle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"answer":"ok"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	assert.False(t, client.API.Started())

	_, err := client.Query(context.Background(), "u", "P", nil)
	require.NoError(t, err)
	assert.True(t, client.API.Started())

	client.Close()
	assert.False(t, client.API.Started())

	_, err = client.Query(context.Background(), "u", "P", nil)
	require.NoError(t, err)
	client.Close()
}

func TestNewClient(t *testing.T) {
	cfg := &config.Config{}
	cfg.ExternalClients.Librarian = config.LibrarianConfig{
		URL:        "http://librarian:8000/api/v1/chat",
		APIKeyFile: "/run/secrets/librarian_api_key",
	}

	t.Run("missing api key is an error", func(t *testing.T) {
		cfg.SetSecretReader(secrets.StaticReader{})
		_, err := librarian.NewClient(cfg)
		assert.Error(t, err)
	})

	t.Run("client uses the configured url", func(t *testing.T) {
		cfg.SetSecretReader(secrets.StaticReader{"/run/secrets/librarian_api_key": "k"})
		client, err := librarian.NewClient(cfg)
		require.NoError(t, err)
		assert.Equal(t, "http://librarian:8000/api/v1/chat", client.URL)
	})
}
