// Package jobclient is a Go client for the job board API. It builds listing
// queries from filter state and performs the CRUD calls the posting form
// needs.
package jobclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
)

const (
	DefaultBaseURL = "http://localhost:5000/api"
	BaseURLEnv     = "JOBBOARD_API_URL"
)

const (
	msgSubmitFailed  = "Failed to submit job posting"
	msgRequestFailed = "Request failed"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("jobclient: %d %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default client (10s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for baseURL, e.g. "https://jobs.example.com/api".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromEnv uses JOBBOARD_API_URL, falling back to DefaultBaseURL.
func NewFromEnv(opts ...Option) *Client {
	baseURL := os.Getenv(BaseURLEnv)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return New(baseURL, opts...)
}

// ListJobs fetches the jobs matching f, newest first.
func (c *Client) ListJobs(ctx context.Context, f Filters) ([]domain.Job, error) {
	path := "/jobs"
	if q := f.Query(); len(q) > 0 {
		path += "?" + q.Encode()
	}

	var jobs []domain.Job
	if err := c.do(ctx, http.MethodGet, path, nil, &jobs, msgRequestFailed); err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].PostedAt.After(jobs[j].PostedAt)
	})
	return jobs, nil
}

func (c *Client) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	var job domain.Job
	if err := c.do(ctx, http.MethodGet, jobPath(id), nil, &job, msgRequestFailed); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) CreateJob(ctx context.Context, form JobForm) (*domain.Job, error) {
	var job domain.Job
	if err := c.do(ctx, http.MethodPost, "/jobs", form, &job, msgSubmitFailed); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) UpdateJob(ctx context.Context, id int64, form JobForm) (*domain.Job, error) {
	var job domain.Job
	if err := c.do(ctx, http.MethodPut, jobPath(id), form, &job, msgSubmitFailed); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) DeleteJob(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, jobPath(id), nil, nil, msgRequestFailed)
}

func jobPath(id int64) string {
	return "/jobs/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any, fallback string) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("jobclient: encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("jobclient: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("jobclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp, fallback)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("jobclient: decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response, fallback string) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: fallback}

	var body struct {
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if json.Unmarshal(raw, &body) == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		}
		apiErr.RequestID = body.RequestID
	}
	if apiErr.RequestID == "" {
		apiErr.RequestID = resp.Header.Get("X-Request-ID")
	}
	return apiErr
}
