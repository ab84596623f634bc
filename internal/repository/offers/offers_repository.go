package offers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"offerLens/domain"
)

type OffersConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// OffersRepository talks to the offer decision engine over HTTP.
type OffersRepository struct {
	offersConfig OffersConfig
	client       *http.Client
}

func NewOffersRepository(cfg OffersConfig) *OffersRepository {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &OffersRepository{
		offersConfig: cfg,
		client:       &http.Client{Timeout: timeout},
	}
}

// Generate posts the guest-stay payload to the engine and returns the decoded
// response body. Non-2xx statuses become a *domain.RequestError carrying the
// upstream status, a human-readable message, and the parsed body.
func (r *OffersRepository) Generate(ctx context.Context, payload map[string]any) (any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode offers payload: %w", err)
	}

	url := strings.TrimRight(r.offersConfig.BaseURL, "/") + "/offers/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build offers request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call offers engine: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read offers response: %w", err)
	}

	parsed := parseBody(raw)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &domain.RequestError{
			Status:  res.StatusCode,
			Message: errorMessage(res.StatusCode, parsed),
			Body:    parsed,
		}
	}

	return parsed, nil
}

// parseBody tolerates empty and non-JSON bodies. An empty body becomes an
// empty object; unparseable text is wrapped as a message.
func parseBody(raw []byte) any {
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return map[string]any{}
	}

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return map[string]any{"message": text}
	}
	return parsed
}

func errorMessage(status int, parsed any) string {
	if record, ok := parsed.(map[string]any); ok {
		if msg, ok := record["message"].(string); ok && strings.TrimSpace(msg) != "" {
			return msg
		}
		if msg, ok := record["error"].(string); ok && strings.TrimSpace(msg) != "" {
			return msg
		}
	}

	switch status {
	case http.StatusBadRequest:
		return "Schema validation error (400)."
	case http.StatusUnprocessableEntity:
		return "Clarification required (422)."
	default:
		return "Request failed."
	}
}
