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

	"github.com/go-playground/validator/v10"
	apperrors "github.com/louisbranch/farmhouse.admin/internal/platform/errors"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/storage"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 4 << 20

// Config configures a Client.
type Config struct {
	// BaseURL is the API root, e.g. https://api.example.com/api/v1.
	BaseURL string
	// HTTPClient overrides the transport. Its RoundTripper is wrapped for tracing.
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client holds the process-wide HTTP plumbing for the marketplace API.
type Client struct {
	baseURL  *url.URL
	http     *http.Client
	validate *validator.Validate
	logger   zerolog.Logger
}

// New builds a Client for cfg.BaseURL.
func New(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		return nil, fmt.Errorf("api base url is required")
	}
	base, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("api base url must be http or https, got %q", raw)
	}

	httpClient := &http.Client{}
	if cfg.HTTPClient != nil {
		clone := *cfg.HTTPClient
		httpClient = &clone
	}
	transport := httpClient.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	httpClient.Transport = otelhttp.NewTransport(transport)

	return &Client{
		baseURL:  base,
		http:     httpClient,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   cfg.Logger,
	}, nil
}

// ForSlot binds the client to one console session's credential slot.
func (c *Client) ForSlot(slot storage.Slot) *Session {
	return &Session{client: c, slot: slot}
}

// Session issues API calls on behalf of one console session.
type Session struct {
	client *Client
	slot   storage.Slot
}

// request describes one API call.
type request struct {
	method string
	path   string
	query  url.Values
	body   any
	// anonymous skips the bearer token.
	anonymous bool
}

// do performs req and returns the raw response body of a 2xx answer.
func (s *Session) do(ctx context.Context, req request) ([]byte, error) {
	if s == nil || s.client == nil {
		return nil, apperrors.New(apperrors.CodeUnknown, "api client is not configured")
	}
	c := s.client

	endpoint := c.baseURL.JoinPath(req.path)
	if len(req.query) > 0 {
		endpoint.RawQuery = req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", req.method, req.path, err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", req.method, req.path, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if !req.anonymous && s.slot != nil {
		token, err := s.slot.Load(ctx)
		if err != nil {
			return nil, err
		}
		if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeTransport, fmt.Sprintf("%s %s: %v", req.method, req.path, err), err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	c.logger.Debug().
		Str("method", req.method).
		Str("path", req.path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("marketplace api call")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeTransport, fmt.Sprintf("read %s %s: %v", req.method, req.path, err), err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if s.slot != nil {
			if clearErr := s.slot.Clear(ctx); clearErr != nil {
				c.logger.Error().Err(clearErr).Msg("clear credential after 401")
			}
		}
		return nil, statusError(apperrors.CodeUnauthorized, req, resp.StatusCode, payload)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(codeForStatus(resp.StatusCode), req, resp.StatusCode, payload)
	}
	return payload, nil
}

func codeForStatus(status int) apperrors.Code {
	switch {
	case status == http.StatusNotFound:
		return apperrors.CodeNotFound
	case status >= 400 && status < 500:
		return apperrors.CodeRejected
	default:
		return apperrors.CodeTransport
	}
}

// errorBody is the failure shape the API uses.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// statusError builds an error carrying the server's own message when present.
func statusError(code apperrors.Code, req request, status int, payload []byte) error {
	message := fmt.Sprintf("%s %s returned %d", req.method, req.path, status)
	var body errorBody
	if err := json.Unmarshal(payload, &body); err == nil {
		if text := strings.TrimSpace(body.Message); text != "" {
			message = text
		} else if text := strings.TrimSpace(body.Error); text != "" {
			message = text
		}
	}
	return apperrors.WithMetadata(code, message, map[string]string{
		"Method": req.method,
		"Path":   req.path,
		"Status": fmt.Sprintf("%d", status),
	})
}
