package database

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"example.com/checkin-reset/internal/model"
)

// StatusError is returned when the database API answers with a non-2xx status.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("database api error: %s: %s", e.Status, e.Body)
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func NewClient(baseURL, authKey string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("database api url not set")
	}
	if authKey == "" {
		return nil, fmt.Errorf("database auth key not set")
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   authKey,
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Post sends payload as JSON to path under the base URL. The caller owns the
// response body; non-2xx statuses are not treated as errors here.
func (c *Client) Post(ctx context.Context, path string, payload any) (*http.Response, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	return c.http.Do(req)
}

// GetAll fetches every record of the collection.
func (c *Client) GetAll(ctx context.Context, coll model.Collection) ([]model.Record, error) {
	payload := map[string]any{"ignore_encryption": model.DefaultIgnoreEncryption}
	resp, err := c.Post(ctx, "/etc/get/"+coll.Name, payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	var parsed struct {
		Data []model.Record `json:"data"`
	}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode %s list: %w", coll.Name, err)
	}
	log.Printf("database: fetched %d %s", len(parsed.Data), coll.Plural)
	return parsed.Data, nil
}

// SetCheckedIn updates the checked_in flag of the record with the given id.
func (c *Client) SetCheckedIn(ctx context.Context, coll model.Collection, id any, checkedIn bool) error {
	payload := struct {
		ID               any                    `json:"_id"`
		CheckedIn        bool                   `json:"checked_in"`
		IgnoreEncryption model.IgnoreEncryption `json:"ignore_encryption"`
	}{ID: id, CheckedIn: checkedIn, IgnoreEncryption: model.DefaultIgnoreEncryption}

	resp, err := c.Post(ctx, "/etc/edit/"+coll.Name, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)
	return &StatusError{Code: resp.StatusCode, Status: resp.Status, Body: string(body)}
}
