package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/places-directory/internal/config"
	"go.uber.org/zap"
)

// Translator converts text between languages. Implementations may fail per
// call; batch callers treat failures as non-fatal.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

type client struct {
	httpClient *http.Client
	baseURL    string
	email      string
	logger     *zap.Logger
}

// NewClient builds a MyMemory translation client. The optional contact
// email raises the provider's daily quota.
func NewClient(cfg *config.TranslatorConfig, logger *zap.Logger) Translator {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		email:   cfg.Email,
		logger:  logger,
	}
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
}

func (c *client) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if text == "" || targetLang == sourceLang {
		return text, nil
	}

	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", fmt.Sprintf("%s|%s", sourceLang, targetLang))
	if c.email != "" {
		params.Set("de", c.email)
	}
	reqURL := fmt.Sprintf("%s/get?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute translation request", zap.Error(err))
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Translation API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return "", fmt.Errorf("translation API error: status %d", resp.StatusCode)
	}

	var mmResp myMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&mmResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if mmResp.ResponseData.TranslatedText == "" {
		return "", fmt.Errorf("translation API returned empty text for %q", text)
	}

	return mmResp.ResponseData.TranslatedText, nil
}
