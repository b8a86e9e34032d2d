package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"portfolio/internal/domain"
)

// APIError is a non-2xx response from the auth service.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("auth service returned %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("auth service returned %d: %s", e.Status, e.Message)
}

// Unwrap maps the response onto the domain sentinels so callers can use errors.Is.
func (e *APIError) Unwrap() error {
	switch {
	case e.Code == "user_already_exists" || e.Code == "email_exists":
		return domain.ErrConflict
	case e.Code == "invalid_grant" || e.Code == "invalid_credentials",
		e.Status == http.StatusUnauthorized, e.Status == http.StatusForbidden:
		return domain.ErrUnauthorized
	case e.Status == http.StatusBadRequest, e.Status == http.StatusUnprocessableEntity:
		return domain.ErrValidation
	default:
		return domain.ErrUpstream
	}
}

// errorBody covers both error shapes GoTrue emits.
type errorBody struct {
	Code             string `json:"error_code"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		apiErr.Message = strings.TrimSpace(string(body))
		return apiErr
	}
	apiErr.Code = eb.Code
	if apiErr.Code == "" {
		apiErr.Code = eb.Error
	}
	for _, m := range []string{eb.Msg, eb.Message, eb.ErrorDescription, eb.Error} {
		if m != "" {
			apiErr.Message = m
			break
		}
	}
	return apiErr
}

// restClient speaks JSON to <supabaseURL>/auth/v1.
type restClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func newRESTClient(supabaseURL, apiKey string) restClient {
	return restClient{
		baseURL: strings.TrimRight(supabaseURL, "/") + "/auth/v1",
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// do sends payload (if any) and decodes the response into out (if any).
// bearer defaults to the API key.
func (c restClient) do(ctx context.Context, method, path, bearer string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if bearer == "" {
		bearer = c.apiKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("apikey", c.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrUpstream, method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
