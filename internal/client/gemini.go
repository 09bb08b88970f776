package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sadhikari20/AIJobInsight/internal/insights"
	"github.com/sadhikari20/AIJobInsight/internal/llm"
	"github.com/sadhikari20/AIJobInsight/internal/prompts"
	"github.com/sadhikari20/AIJobInsight/internal/types"
)

// GeminiSource fetches insights from the Gemini generative backend. The model
// returns free-text bullet fields that the normalizer repairs into the
// canonical shape.
type GeminiSource struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewGeminiSource creates a source backed by an llm.Client.
func NewGeminiSource(client llm.Client) *GeminiSource {
	return &GeminiSource{
		client: client,
		tier:   llm.TierStandard,
	}
}

// NewGeminiSourceFromKey constructs the underlying Gemini client from an API
// key using the default model configuration.
func NewGeminiSourceFromKey(ctx context.Context, apiKey string) (*GeminiSource, error) {
	geminiClient, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, &RequestError{Message: "failed to create Gemini client", Cause: err}
	}
	return NewGeminiSource(geminiClient), nil
}

// FetchInsights issues one structured-output generation call and normalizes
// the response.
func (s *GeminiSource) FetchInsights(ctx context.Context, req types.InsightRequest) (*types.InsightResult, error) {
	if err := req.Validate(); err != nil {
		return nil, &RequestError{Message: "invalid request", Cause: err}
	}

	prompt := buildInsightPrompt(req)

	responseText, err := s.client.GenerateJSON(ctx, prompt, s.tier)
	if err != nil {
		return nil, &RequestError{Message: "generation call failed", Cause: err}
	}

	var raw insights.RawResponse
	if err := json.Unmarshal([]byte(responseText), &raw); err != nil {
		return nil, &DecodeError{Message: "malformed JSON from model", Cause: err}
	}

	result, err := insights.Normalize(&raw)
	if err != nil {
		return nil, fmt.Errorf("model response: %w", err)
	}
	return result, nil
}

// Close releases the underlying LLM client.
func (s *GeminiSource) Close() error {
	return s.client.Close()
}

// buildInsightPrompt fills the fixed prompt template with the request inputs.
func buildInsightPrompt(req types.InsightRequest) string {
	template := prompts.MustGet("insights.json", "generate-job-insights")
	return prompts.Format(template, map[string]string{
		"JobTitle":    req.JobTitle,
		"CareerLevel": req.CareerLevel,
	})
}
