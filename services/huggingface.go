package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"mazingira-mind-backend/config"

	"go.uber.org/zap"
)

// ClassifierResult is the top prediction of an external text classifier.
type ClassifierResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// SentimentClassifier is an externally supplied sentiment capability.
// It may be absent (nil) or fail at call time; both are valid.
type SentimentClassifier interface {
	ClassifySentiment(ctx context.Context, text string) (*ClassifierResult, error)
}

// ConcernClassifier is an externally supplied concern-category capability,
// also used as the crisis-severity booster.
type ConcernClassifier interface {
	ClassifyConcern(ctx context.Context, text string) (*ClassifierResult, error)
}

// HuggingFaceClient calls the Hugging Face inference API for both
// classifier capabilities. Timeout and retry policy live here, not in
// the pipeline.
type HuggingFaceClient struct {
	apiKey         string
	baseURL        string
	sentimentModel string
	concernModel   string
	httpClient     *http.Client
	logger         *zap.Logger
}

func NewHuggingFaceClient(cfg config.HuggingFaceConfig, logger *zap.Logger) *HuggingFaceClient {
	return &HuggingFaceClient{
		apiKey:         cfg.APIKey,
		baseURL:        cfg.BaseURL,
		sentimentModel: cfg.SentimentModel,
		concernModel:   cfg.ConcernModel,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

func (c *HuggingFaceClient) ClassifySentiment(ctx context.Context, text string) (*ClassifierResult, error) {
	return c.classify(ctx, c.sentimentModel, text)
}

func (c *HuggingFaceClient) ClassifyConcern(ctx context.Context, text string) (*ClassifierResult, error) {
	return c.classify(ctx, c.concernModel, text)
}

// classify posts the text to a hosted model and returns its top prediction.
func (c *HuggingFaceClient) classify(ctx context.Context, model, text string) (*ClassifierResult, error) {
	endpoint := fmt.Sprintf("%s/models/%s", c.baseURL, model)

	payload := map[string]interface{}{
		"inputs": text,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference API error (%d): %s", resp.StatusCode, string(body))
	}

	// The inference API returns the predictions of a text-classification
	// model as a nested array: [[{"label": ..., "score": ...}, ...]],
	// best prediction first.
	var nested [][]ClassifierResult
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		top := nested[0][0]
		return &top, nil
	}

	// Some models answer with a flat array instead.
	var flat []ClassifierResult
	if err := json.Unmarshal(body, &flat); err == nil && len(flat) > 0 {
		top := flat[0]
		return &top, nil
	}

	return nil, fmt.Errorf("no prediction in response: %s", string(body))
}
