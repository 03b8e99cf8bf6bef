package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mindwell/mindwell/internal/client/models"
)

// HTTPClient implements Client over the backend's REST endpoints.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewHTTPClient returns an HTTPClient for the given base URL
// (e.g. "https://api.example.org"). Requests time out after timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetToken(token string) { c.token = token }
func (c *HTTPClient) ClearToken()           { c.token = "" }

// do issues one JSON request and decodes a 2xx response body into out
// (skipped when out is nil). Transport failures map to ErrUnavailable;
// error statuses map to the package sentinels or *ServerError.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.statusError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// statusError maps an error response to a sentinel or *ServerError,
// surfacing the backend's "message" field when present.
func (c *HTTPClient) statusError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if payload.Message != "" {
			return fmt.Errorf("%w: %s", ErrUnauthorized, payload.Message)
		}
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return &ServerError{Status: resp.StatusCode, Message: payload.Message}
	}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*Credentials, error) {
	body := map[string]string{"email": email, "password": password}
	creds := &Credentials{}
	if err := c.do(ctx, http.MethodPost, "/server/login", body, creds); err != nil {
		return nil, err
	}
	return creds, nil
}

func (c *HTTPClient) Signup(ctx context.Context, name, email, password string) (*Credentials, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	creds := &Credentials{}
	if err := c.do(ctx, http.MethodPost, "/server/signup", body, creds); err != nil {
		return nil, err
	}
	return creds, nil
}

func (c *HTTPClient) ListEntries(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	path := "/server/entries?ID=" + url.QueryEscape(userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *HTTPClient) CreateEntry(ctx context.Context, userID, text string, at time.Time) (*models.JournalEntry, error) {
	body := map[string]any{
		"ID":           userID,
		"journalentry": text,
		"datetime":     at,
	}
	entry := &models.JournalEntry{}
	if err := c.do(ctx, http.MethodPost, "/server/entries", body, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (c *HTTPClient) DeleteEntry(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/server/entries/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) ListLevels(ctx context.Context, userID string) ([]models.EmotionRecord, error) {
	var levels []models.EmotionRecord
	path := "/server/levels?ID=" + url.QueryEscape(userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &levels); err != nil {
		return nil, err
	}
	return levels, nil
}

func (c *HTTPClient) CreateLevel(ctx context.Context, userID string, scores models.EmotionScores, at time.Time) (*models.EmotionRecord, error) {
	body := map[string]any{
		"ID":         userID,
		"anxiety":    scores.Anxiety,
		"depression": scores.Depression,
		"stress":     scores.Stress,
		"happiness":  scores.Happiness,
		"anger":      scores.Anger,
		"datetime":   at,
	}
	record := &models.EmotionRecord{}
	if err := c.do(ctx, http.MethodPost, "/server/levels", body, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (c *HTTPClient) DeleteLevel(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/server/levels/"+url.PathEscape(id), nil, nil)
}
