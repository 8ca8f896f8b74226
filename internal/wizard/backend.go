package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// APIError is a non-2xx response from the prediction API, carrying the
// server's user-facing message so the wizard can surface it inline.
type APIError struct {
	Status  int    // HTTP status code
	Message string // Server-provided message
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// HTTPBackend drives the wizard against the live API
type HTTPBackend struct {
	baseURL string
	client  *http.Client
}

// NewHTTPBackend returns a backend for the API at baseURL. A nil client gets
// a default with a sane timeout.
func NewHTTPBackend(baseURL string, client *http.Client) *HTTPBackend {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPBackend{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// Join registers the participant and returns the assigned identifier
func (b *HTTPBackend) Join(ctx context.Context, name, relation string) (uint, error) {
	var resp struct {
		ParticipantID uint `json:"participantId"`
	}
	err := b.post(ctx, "/api/join", map[string]any{"name": name, "relation": relation}, &resp)
	if err != nil {
		return 0, err
	}
	return resp.ParticipantID, nil
}

// SubmitPrediction stores the composed prediction
func (b *HTTPBackend) SubmitPrediction(ctx context.Context, sub Submission) error {
	body := map[string]any{
		"participantId": sub.ParticipantID,
		"gender":        sub.Gender,
		"weightLbs":     sub.WeightLbs,
		"dueDate":       sub.DueDate,
		"betAmount":     sub.BetAmount,
	}
	return b.post(ctx, "/api/predict", body, nil)
}

// post sends a JSON body and decodes a 2xx response into out. Non-2xx
// responses come back as *APIError with the server's message.
func (b *HTTPBackend) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		var apiErr struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		_ = json.NewDecoder(res.Body).Decode(&apiErr)
		msg := apiErr.Message
		if msg == "" {
			msg = apiErr.Error
		}
		return &APIError{Status: res.StatusCode, Message: msg}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
