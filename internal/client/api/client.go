package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	pkgapi "github.com/playlog/playlog/pkg/api"
)

// Default query parameters for paginated, sortable listings.
const (
	DefaultPerPage       = 30
	DefaultSortDirection = "desc"

	// GamesDefaultSortBy orders catalog listings by popularity
	GamesDefaultSortBy = "total_rating_count"
	// ForumDefaultSortBy orders thread listings by recency
	ForumDefaultSortBy = "created_at"
)

// Client is the HTTP gateway to the PlayLog backend. Every method
// issues exactly one request and normalizes the reply into typed data
// or a typed error; no state is kept between calls and no retries are
// performed.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a new API client. apiKey is the static service
// key sent as X-API-KEY on every request.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// request describes one outbound call before it is issued.
// op names the operation in fallback error messages.
type request struct {
	method string
	path   string
	op     string
	token  string
	query  url.Values
	body   any
}

// ListOptions control paginated, sortable listings. Zero fields fall
// back to the defaults of the endpoint being called.
type ListOptions struct {
	Page          int
	PerPage       int
	SortBy        string
	SortDirection string
}

// query renders the options as backend query parameters, filling the
// defaults: page 1, 30 per page, descending by defaultSortBy.
func (o ListOptions) query(defaultSortBy string) url.Values {
	if o.Page <= 0 {
		o.Page = 1
	}
	if o.PerPage <= 0 {
		o.PerPage = DefaultPerPage
	}
	if o.SortBy == "" {
		o.SortBy = defaultSortBy
	}
	if o.SortDirection == "" {
		o.SortDirection = DefaultSortDirection
	}

	q := url.Values{}
	q.Set("page", fmt.Sprintf("%d", o.Page))
	q.Set("per_page", fmt.Sprintf("%d", o.PerPage))
	q.Set("sort_by", o.SortBy)
	q.Set("sort_direction", o.SortDirection)
	return q
}

// do performs one HTTP request and normalizes the reply.
//
// On a non-2xx status it fails with *StatusError carrying the backend
// message when one is present, else "<op> failed". On a 2xx status it
// unwraps the envelope's data field into result; a missing data field
// is *MalformedError, never a silent empty success. A nil result marks
// a plain-ack call whose reply body carries no payload.
func (c *Client) do(ctx context.Context, req request, result any) error {
	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var bodyReader io.Reader
	if req.body != nil {
		jsonData, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-API-KEY", c.apiKey)
	httpReq.Header.Set("X-Request-ID", uuid.New().String())
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w", req.op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: failed to read response body: %w", req.op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := fmt.Sprintf("%s failed", req.op)
		var errResp pkgapi.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			message = errResp.Message
		}
		return &StatusError{Op: req.op, Message: message, StatusCode: resp.StatusCode}
	}

	if result == nil {
		return nil
	}

	var envelope pkgapi.Envelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", req.op, err)
	}

	if !rawPresent(envelope.Data) {
		return &MalformedError{Op: req.op}
	}

	if err := json.Unmarshal(envelope.Data, result); err != nil {
		return fmt.Errorf("%s: failed to decode response data: %w", req.op, err)
	}

	return nil
}

// rawPresent reports whether a raw JSON field was present and non-null.
func rawPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
