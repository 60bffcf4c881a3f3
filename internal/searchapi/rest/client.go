// Package rest implements the search management clients over the service's REST API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/kailas-cloud/searchprov/internal/metrics"
	"github.com/kailas-cloud/searchprov/internal/searchapi"
	"github.com/kailas-cloud/searchprov/internal/version"
)

// Compile-time checks.
var (
	_ searchapi.IndexManager   = (*Client)(nil)
	_ searchapi.IndexerManager = (*Client)(nil)
)

const (
	// DefaultTimeout bounds a single request.
	DefaultTimeout = 30 * time.Second

	// MaxResponseSize caps how much of a response body is read (10MB).
	MaxResponseSize = 10 * 1024 * 1024

	defaultAPIVersion = "2023-11-01"
)

// Config holds the connection settings of the search service.
type Config struct {
	Endpoint   string
	APIKey     string
	APIVersion string
	Timeout    time.Duration
	HTTPClient *http.Client // optional, overrides Timeout
	Logger     *zap.Logger
}

// Client talks to the index and indexer management endpoints.
type Client struct {
	baseURL    *url.URL
	apiKey     string
	apiVersion string
	http       *http.Client
	logger     *zap.Logger
}

// New creates a REST client for the search service at cfg.Endpoint.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	u, err := url.Parse(strings.TrimRight(cfg.Endpoint, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q", cfg.Endpoint)
	}

	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL:    u,
		apiKey:     cfg.APIKey,
		apiVersion: apiVersion,
		http:       httpClient,
		logger:     logger,
	}, nil
}

// CreateOrReplaceIndex issues PUT /indexes/{name}.
func (c *Client) CreateOrReplaceIndex(ctx context.Context, def *searchapi.IndexDefinition) error {
	c.logger.Debug("index schema",
		zap.String("key", def.Key()),
		zap.Stringer("schema", def),
	)
	return c.do(ctx, searchapi.OpCreateIndex, http.MethodPut, "indexes", def.Name, "", def, nil,
		http.StatusOK, http.StatusCreated, http.StatusNoContent)
}

// CreateOrUpdateDataSource issues PUT /datasources/{name}.
func (c *Client) CreateOrUpdateDataSource(ctx context.Context, def *searchapi.DataSourceDefinition) error {
	return c.do(ctx, searchapi.OpUpsertDataSource, http.MethodPut, "datasources", def.Name, "", def, nil,
		http.StatusOK, http.StatusCreated, http.StatusNoContent)
}

// GetIndexer issues GET /indexers/{name}. A missing indexer yields an error wrapping domain.ErrNotFound.
func (c *Client) GetIndexer(ctx context.Context, name string) (*searchapi.IndexerDefinition, error) {
	var out searchapi.IndexerDefinition
	if err := c.do(ctx, searchapi.OpGetIndexer, http.MethodGet, "indexers", name, "", nil, &out,
		http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetIndexer issues POST /indexers/{name}/reset, clearing the change tracking state.
func (c *Client) ResetIndexer(ctx context.Context, name string) error {
	return c.do(ctx, searchapi.OpResetIndexer, http.MethodPost, "indexers", name, "reset", nil, nil,
		http.StatusOK, http.StatusNoContent)
}

// CreateOrUpdateIndexer issues PUT /indexers/{name}.
func (c *Client) CreateOrUpdateIndexer(ctx context.Context, def *searchapi.IndexerDefinition) error {
	return c.do(ctx, searchapi.OpUpsertIndexer, http.MethodPut, "indexers", def.Name, "", def, nil,
		http.StatusOK, http.StatusCreated, http.StatusNoContent)
}

// RunIndexer issues POST /indexers/{name}/run. A busy service yields an error wrapping domain.ErrRateLimited.
func (c *Client) RunIndexer(ctx context.Context, name string) error {
	return c.do(ctx, searchapi.OpRunIndexer, http.MethodPost, "indexers", name, "run", nil, nil,
		http.StatusAccepted, http.StatusNoContent)
}

// resourceURL builds {endpoint}/{collection}/{name}[/{action}]?api-version=...
func (c *Client) resourceURL(collection, name, action string) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + "/" + collection + "/" + name
	if action != "" {
		u.Path += "/" + action
	}
	u.RawPath = ""
	q := url.Values{}
	q.Set("api-version", c.apiVersion)
	u.RawQuery = q.Encode()
	return u.String()
}

func (c *Client) do(
	ctx context.Context, op, method, collection, name, action string,
	in, out any, okStatuses ...int,
) error {
	if name == "" {
		return &searchapi.Error{Op: op, Err: fmt.Errorf("resource name is required")}
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return &searchapi.Error{Op: op, Err: fmt.Errorf("marshal request: %w", err)}
		}
		body = bytes.NewReader(raw)
	}

	target := c.resourceURL(collection, name, action)
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return &searchapi.Error{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}

	requestID := uuid.NewString()
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("client-request-id", requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	took := time.Since(start)
	if err != nil {
		metrics.ObserveAPICall(op, 0, took)
		return &searchapi.Error{Op: op, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	metrics.ObserveAPICall(op, resp.StatusCode, took)

	c.logger.Debug("search api call",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("resource", name),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", took),
		zap.String("client_request_id", requestID),
	)

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return &searchapi.Error{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}
	if len(respBody) > MaxResponseSize {
		return &searchapi.Error{Op: op, StatusCode: resp.StatusCode,
			Err: fmt.Errorf("response exceeds %d bytes", MaxResponseSize)}
	}

	if !slices.Contains(okStatuses, resp.StatusCode) {
		return parseAPIError(op, resp.StatusCode, respBody)
	}

	if out != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &searchapi.Error{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}

// parseAPIError extracts code and message from the service's
// {"error":{"code":"...","message":"..."}} body, falling back to the raw body.
func parseAPIError(op string, status int, body []byte) *searchapi.Error {
	code := gjson.GetBytes(body, "error.code").String()
	message := gjson.GetBytes(body, "error.message").String()
	if message == "" {
		message = strings.TrimSpace(string(body))
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return searchapi.NewStatusError(op, status, code, message)
}
