package translator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/places-directory/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(serverURL string) Translator {
	return NewClient(&config.TranslatorConfig{
		BaseURL:        serverURL,
		Email:          "ops@example.com",
		RequestTimeout: 5 * time.Second,
	}, zap.NewNop())
}

func TestClient_Translate(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/get", r.URL.Path)
			assert.Equal(t, "Restaurants", r.URL.Query().Get("q"))
			assert.Equal(t, "en|tr", r.URL.Query().Get("langpair"))
			assert.Equal(t, "ops@example.com", r.URL.Query().Get("de"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"responseData": {"translatedText": "Restoranlar"}, "responseStatus": 200}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		translated, err := client.Translate(context.Background(), "Restaurants", "en", "tr")

		require.NoError(t, err)
		assert.Equal(t, "Restoranlar", translated)
	})

	t.Run("same source and target returns input without a call", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("no request expected")
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		translated, err := client.Translate(context.Background(), "Restaurants", "en", "en")

		require.NoError(t, err)
		assert.Equal(t, "Restaurants", translated)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.Translate(context.Background(), "Restaurants", "en", "tr")
		assert.Error(t, err)
	})

	t.Run("empty translated text is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"responseData": {"translatedText": ""}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.Translate(context.Background(), "Restaurants", "en", "tr")
		assert.Error(t, err)
	})
}
