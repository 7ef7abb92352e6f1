package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the quote-of-the-day service.
const DefaultBaseURL = "https://quotes.rest"

// Quote is one quote/author pair.
type Quote struct {
	Text   string
	Author string
}

// APIError is a non-success response from the quote service, carrying the
// server-supplied message when one was present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("quote service: %d: %s", e.StatusCode, e.Message)
}

// Client fetches the quote of the day. The zero value is not usable; use
// NewClient and override fields as needed (tests point BaseURL at httptest).
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
}

func NewClient() *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    DefaultBaseURL,
	}
}

// Wire shape of GET /qod. Success carries contents.quotes, failure carries
// error.message.
type qodResponse struct {
	Contents struct {
		Quotes []struct {
			Quote  string `json:"quote"`
			Author string `json:"author"`
		} `json:"quotes"`
	} `json:"contents"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Fetch issues one GET and extracts the first quote/author pair. No retry.
func (c *Client) Fetch(ctx context.Context) (Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/qod", nil)
	if err != nil {
		return Quote{}, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.APIKey != "" {
		req.Header.Set("X-TheySaidSo-Api-Key", c.APIKey)
	}
	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return Quote{}, fmt.Errorf("fetch quote: %w", err)
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return Quote{}, fmt.Errorf("read response: %w", err)
	}
	var body qodResponse
	decodeErr := json.Unmarshal(b, &body)

	if res.StatusCode != http.StatusOK {
		msg := body.Error.Message
		if msg == "" {
			msg = http.StatusText(res.StatusCode)
		}
		return Quote{}, &APIError{StatusCode: res.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return Quote{}, fmt.Errorf("decode response: %w", decodeErr)
	}
	if len(body.Contents.Quotes) == 0 {
		return Quote{}, errors.New("no quotes in response")
	}
	q := body.Contents.Quotes[0]
	return Quote{Text: q.Quote, Author: q.Author}, nil
}
