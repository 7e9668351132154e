package middleware_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/places-directory/internal/delivery/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLanguageApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(middleware.Language([]string{"en", "tr", "ru"}, "en"))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(middleware.Lang(c))
	})
	return app
}

func TestLanguageNegotiation(t *testing.T) {
	app := newLanguageApp(t)

	cases := []struct {
		name           string
		target         string
		acceptLanguage string
		want           string
	}{
		{"defaults without hints", "/", "", "en"},
		{"query parameter wins", "/?lang=tr", "ru", "tr"},
		{"unsupported query parameter ignored", "/?lang=de", "tr", "tr"},
		{"accept-language header matched", "/", "tr-TR,tr;q=0.9,en;q=0.5", "tr"},
		{"unsupported header falls back to default", "/", "de-DE", "en"},
		{"quality ordering respected", "/", "ru;q=0.9,tr;q=1.0", "tr"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.target, nil)
			if tc.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tc.acceptLanguage)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(body))
		})
	}
}
