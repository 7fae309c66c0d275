// Package mentorhub is a client for the MentorHub REST backend managing
// students, mentors and projects.
package mentorhub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/campusbridge-hq/mentorhub-client/pkg/httpclient"
)

const defaultTimeout = 15 * time.Second

// Entity names understood by the backend's generic routes.
const (
	EntityStudents = "students"
	EntityMentors  = "mentors"
	EntityProjects = "projects"
)

// Config holds the settings for a Client.
type Config struct {
	// BaseURL is the backend address, e.g. "http://localhost:8000". Required.
	BaseURL string
	// Timeout bounds each request. Defaults to 15s. Ignored when HTTPClient is set.
	Timeout time.Duration
	// Headers are sent with every request.
	Headers map[string]string
	// HTTPClient overrides the default resty transport (e.g. for tests).
	HTTPClient httpclient.Client
	// Logger receives per-request debug logs. Defaults to a nop logger.
	Logger *zap.SugaredLogger
}

// Client talks to the MentorHub backend. Every method issues exactly one HTTP
// request; the Client keeps no per-call state and is safe for concurrent use.
type Client struct {
	baseURL string
	headers map[string]string
	http    httpclient.Client
	log     *zap.SugaredLogger
}

// NewClient builds a Client from cfg.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = httpclient.NewRestyClient(timeout)
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		headers: cfg.Headers,
		http:    hc,
		log:     log,
	}, nil
}

// do issues one request and decodes the JSON response into out (skipped when
// out is nil). op labels the operation for error reporting.
func (c *Client) do(ctx context.Context, op, method, url string, body, out any) error {
	c.log.Debugw("mentorhub request", "op", op, "method", method, "url", url)

	resp, err := c.http.Do(ctx, method, url, c.headers, body)
	if err != nil {
		return newTransportError(op, err)
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return newStatusError(op, resp.StatusCode(), resp.Body())
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
