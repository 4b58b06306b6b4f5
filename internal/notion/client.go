package notion

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
)

// ErrNotConfigured is returned before any network call when the
// collection id for an operation is missing from the configuration.
var ErrNotConfigured = errors.New("database id not configured")

// APIError carries an upstream failure. The message is passed through
// verbatim; callers map it to a 500.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("upstream request failed with status %d", e.StatusCode)
}

// Client is a thin HTTP client for the store's REST API. It handles
// Bearer token authentication, the versioning header, and JSON
// (de)serialization. Failed calls are terminal; there is no retry.
type Client struct {
	baseURL    string
	token      string
	version    string
	httpClient *http.Client
}

// NewClient creates a store client. baseURL is the API root and
// version the dated API revision the wire shapes were written against.
func NewClient(baseURL, token, version string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		version: version,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// QueryRequest selects and orders pages of a database.
type QueryRequest struct {
	Filter      *Filter `json:"filter,omitempty"`
	Sorts       []Sort  `json:"sorts,omitempty"`
	StartCursor string  `json:"start_cursor,omitempty"`
	PageSize    int     `json:"page_size,omitempty"`
}

// Filter is a single property equality condition, the only filter
// shape this application needs.
type Filter struct {
	Property string         `json:"property"`
	RichText *TextCondition `json:"rich_text,omitempty"`
	Email    *TextCondition `json:"email,omitempty"`
}

// TextCondition matches a property value exactly.
type TextCondition struct {
	Equals string `json:"equals"`
}

// Sort orders query results by a property or a page timestamp.
type Sort struct {
	Property  string `json:"property,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Direction string `json:"direction"`
}

// Sort directions and timestamps.
const (
	SortAscending    = "ascending"
	SortDescending   = "descending"
	TimestampCreated = "created_time"
)

// QueryResponse is a page of query results.
type QueryResponse struct {
	Results    []Page `json:"results"`
	NextCursor string `json:"next_cursor"`
	HasMore    bool   `json:"has_more"`
}

// PageCreateRequest creates a page inside a database.
type PageCreateRequest struct {
	Parent     Parent     `json:"parent"`
	Properties Properties `json:"properties"`
}

// Parent names the database a new page belongs to.
type Parent struct {
	DatabaseID string `json:"database_id"`
}

// PageUpdateRequest patches page properties and/or the archived flag.
type PageUpdateRequest struct {
	Properties Properties `json:"properties,omitempty"`
	Archived   *bool      `json:"archived,omitempty"`
}

// QueryDatabase runs a filtered, sorted query against one database.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, req *QueryRequest) (*QueryResponse, error) {
	if databaseID == "" {
		return nil, ErrNotConfigured
	}
	if req == nil {
		req = &QueryRequest{}
	}
	var resp QueryResponse
	path := fmt.Sprintf("/databases/%s/query", databaseID)
	if err := c.do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreatePage inserts a new page.
func (c *Client) CreatePage(ctx context.Context, req *PageCreateRequest) (*Page, error) {
	if req.Parent.DatabaseID == "" {
		return nil, ErrNotConfigured
	}
	var page Page
	if err := c.do(ctx, http.MethodPost, "/pages", req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// UpdatePage patches an existing page. Archiving an already archived
// page is accepted by the store and leaves it unchanged.
func (c *Client) UpdatePage(ctx context.Context, pageID string, req *PageUpdateRequest) (*Page, error) {
	var page Page
	path := fmt.Sprintf("/pages/%s", pageID)
	if err := c.do(ctx, http.MethodPatch, path, req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// RetrievePage fetches one page by id.
func (c *Client) RetrievePage(ctx context.Context, pageID string) (*Page, error) {
	var page Page
	path := fmt.Sprintf("/pages/%s", pageID)
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.version)
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling store: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(data),
		}
	}

	if result != nil {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// upstreamMessage extracts the store's own error message so it can be
// surfaced verbatim, falling back to the raw body.
func upstreamMessage(body []byte) string {
	var wire struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &wire); err == nil && wire.Message != "" {
		return wire.Message
	}
	return strings.TrimSpace(string(body))
}
