// Package llm turns inspection report text into a structured CostEstimate using an
// OpenAI-compatible chat completions API.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"inspection_estimator/internal/domain/entities"
	"inspection_estimator/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
)

var (
	ErrMissingAPIKey = errors.New("openai api key not configured")
	ErrNoChoices     = errors.New("no choices in openai response")
)

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
}

type OpenAIAnalyzer struct {
	cfg        Config
	httpClient *http.Client
	log        *zap.Logger
}

var _ interfaces.IEstimateAnalyzer = (*OpenAIAnalyzer)(nil)

// NewOpenAIAnalyzer builds the analyzer. The call deadline comes from the caller's
// context; httpClient may be nil.
func NewOpenAIAnalyzer(cfg Config, httpClient *http.Client, logger *zap.Logger) *OpenAIAnalyzer {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = defaultModel
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpenAIAnalyzer{cfg: cfg, httpClient: httpClient, log: logger.Named("llm")}
}

func (a *OpenAIAnalyzer) Analyze(ctx context.Context, text string) (entities.CostEstimate, error) {
	rid := uuid.NewString()
	start := time.Now()
	log := a.log.With(zap.String("req_id", rid))

	if strings.TrimSpace(a.cfg.APIKey) == "" {
		return entities.CostEstimate{}, ErrMissingAPIKey
	}
	log.Info("llm.analyze.start", zap.String("model", a.cfg.Model), zap.Int("text_len", len(text)))

	body := map[string]any{
		"model":           a.cfg.Model,
		"temperature":     a.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": buildSystemPrompt()},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(BuildEstimateJSONSchema())},
			{"role": "user", "content": buildUserPrompt(text)},
		},
	}

	endpoint := strings.TrimRight(a.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := a.post(ctx, endpoint, body)
	if err != nil {
		log.Error("llm.analyze.http_error", zap.Error(err), zap.Int64("elapsed_ms", time.Since(start).Milliseconds()))
		return entities.CostEstimate{}, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		log.Error("llm.analyze.decode_error", zap.Error(err), zap.Int("raw_bytes", len(raw)))
		return entities.CostEstimate{}, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		log.Error("llm.analyze.no_choices", zap.Int("raw_bytes", len(raw)))
		return entities.CostEstimate{}, ErrNoChoices
	}

	estimate, err := ParseEstimate([]byte(strings.TrimSpace(cc.Choices[0].Message.Content)))
	if err != nil {
		log.Error("llm.analyze.malformed", zap.Error(err), zap.Int64("elapsed_ms", time.Since(start).Milliseconds()))
		return entities.CostEstimate{}, err
	}

	log.Info("llm.analyze.ok",
		zap.Int("categories", len(estimate.RepairCategories)),
		zap.Bool("termites", estimate.TermitesMentioned),
		zap.Bool("pests", estimate.PestsMentioned),
		zap.Bool("rot", estimate.RotMentioned),
		zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)
	return estimate, nil
}

func (a *OpenAIAnalyzer) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+a.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			a.log.Warn("openai response body close error", zap.Error(err))
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("read openai response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, strings.TrimSpace(buf.String()))
	}
	return buf.Bytes(), nil
}
