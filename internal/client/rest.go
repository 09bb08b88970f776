package client

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

	"github.com/sadhikari20/AIJobInsight/internal/insights"
	"github.com/sadhikari20/AIJobInsight/internal/schemas"
	"github.com/sadhikari20/AIJobInsight/internal/types"
)

// DefaultTimeout is the default HTTP request timeout for the REST source.
const DefaultTimeout = 30 * time.Second

// restResponse is the wire shape of the REST insight service: one named
// string-array field per category.
type restResponse struct {
	JobTitle             string                    `json:"job_title"`
	CareerLevel          string                    `json:"career_level"`
	SkillDistribution    insights.RawDistribution  `json:"skill_distribution"`
	SkillRequirements    []string                  `json:"skill_requirements"`
	LeadershipExperience []string                  `json:"leadership_experience"`
	EmployeeTenure       []string                  `json:"employee_tenure"`
	RequiredExpertise    []string                  `json:"required_expertise"`
}

// restError is the service's error body for non-2xx responses.
type restError struct {
	Detail string `json:"detail"`
}

// RESTSource fetches insights from the REST insight service.
type RESTSource struct {
	baseURL    string
	httpClient *http.Client
}

// NewRESTSource creates a source that POSTs to {baseURL}/insights.
func NewRESTSource(baseURL string) *RESTSource {
	return &RESTSource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// FetchInsights issues one POST /insights call and normalizes the payload.
func (s *RESTSource) FetchInsights(ctx context.Context, req types.InsightRequest) (*types.InsightResult, error) {
	if err := req.Validate(); err != nil {
		return nil, &RequestError{Message: "invalid request", Cause: err}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, &RequestError{Message: "failed to encode request", Cause: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/insights", bytes.NewReader(body))
	if err != nil {
		return nil, &RequestError{Message: "failed to create request", Cause: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, &RequestError{Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp.StatusCode, payload)
	}

	if err := schemas.ValidateInsightResponse(payload); err != nil {
		var verr *schemas.ValidationError
		if errors.As(err, &verr) {
			return nil, &DecodeError{Message: "payload failed schema validation", Cause: verr}
		}
		return nil, &DecodeError{Message: "schema validation unavailable", Cause: err}
	}

	var wire restResponse
	if err := json.Unmarshal(payload, &wire); err != nil {
		return nil, &DecodeError{Message: "malformed JSON payload", Cause: err}
	}

	result, err := insights.Normalize(wire.raw())
	if err != nil {
		return nil, fmt.Errorf("insight service response: %w", err)
	}
	return result, nil
}

// raw renames the wire fields into the normalizer's backend-agnostic shape.
func (r *restResponse) raw() *insights.RawResponse {
	return &insights.RawResponse{
		SkillDistribution: &r.SkillDistribution,
		Categories: []insights.RawCategory{
			{Key: string(types.CategorySkills), Points: r.SkillRequirements},
			{Key: string(types.CategoryLeadership), Points: r.LeadershipExperience},
			{Key: string(types.CategoryTenure), Points: r.EmployeeTenure},
			{Key: string(types.CategoryExpertise), Points: r.RequiredExpertise},
		},
	}
}

// statusError extracts the service's detail message from an error body. The
// body is best-effort: anything unparseable falls back to the status code.
func statusError(status int, payload []byte) *StatusError {
	var body restError
	if err := json.Unmarshal(payload, &body); err == nil && body.Detail != "" {
		return &StatusError{StatusCode: status, Detail: body.Detail}
	}
	return &StatusError{StatusCode: status}
}
