package reason

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// LocalConfig configures the locally hosted model runtime (Ollama dialect).
type LocalConfig struct {
	BaseURL string        // default http://localhost:11434
	Model   string        // e.g. "llama3.2:3b"
	Timeout time.Duration // http client timeout
}

// LocalClient is the second classification tier.
type LocalClient struct {
	cfg    LocalConfig
	http   *http.Client
	logger *slog.Logger
}

func NewLocalClient(cfg LocalConfig, logger *slog.Logger) *LocalClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434"
	}
	if cfg.Model == "" {
		cfg.Model = "llama3.2:3b"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LocalClient{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type generateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Complete sends one prompt to the local runtime and returns the raw
// completion text.
func (c *LocalClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	body := generateRequest{
		Model:  c.cfg.Model,
		Prompt: prompt,
		Stream: false,
		Options: map[string]any{
			"temperature": 0,
			"num_predict": maxTokens,
		},
	}

	raw, _, err := sendJSON(ctx, c.http, c.cfg.BaseURL+"/api/generate", body, nil, c.logger)
	if err != nil {
		return "", err
	}

	var resp generateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}
	content := strings.TrimSpace(resp.Response)
	if content == "" {
		return "", errors.New("generate response is empty")
	}
	return content, nil
}
