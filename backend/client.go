// File: backend/client.go
package backend

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

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shiftmanager/config"
	"shiftmanager/utils"
)

// Client is the shared REST client for the scheduling backend. All repository
// adapters go through it so requests carry the same base URL, timeout and
// correlation logging.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient constructs a Client from the loaded application config. A timeout
// of zero keeps the transport default, matching the original console.
func NewClient() *Client {
	timeout := time.Duration(config.AppConfig.HTTPTimeoutSeconds) * time.Second
	return &Client{
		baseURL: strings.TrimRight(config.AppConfig.APIBaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  utils.GetLogger(),
	}
}

// NewClientWith constructs a Client against an explicit base URL, bypassing
// the global config. Used by tests and by callers that manage their own
// configuration.
func NewClientWith(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

// Do issues one request and returns the raw response. Transport failures come
// back as RequestError; status handling is left to the caller, since the
// adapters differ in how they treat non-2xx bodies.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, NewRequestError("encode request body", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, NewRequestError("build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.New().String()
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			zap.String("requestId", requestID),
			zap.String("method", method),
			zap.String("url", reqURL),
			zap.Error(err),
		)
		return nil, NewRequestError(fmt.Sprintf("%s %s", method, path), err)
	}

	c.logger.Debug("backend request",
		zap.String("requestId", requestID),
		zap.String("method", method),
		zap.String("url", reqURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)
	return resp, nil
}

// GetJSON issues a GET and decodes a 2xx JSON body into out. Non-2xx responses
// become StatusError with the body's message when one is present.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	resp, err := c.Do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !IsSuccessStatus(resp.StatusCode) {
		return &StatusError{StatusCode: resp.StatusCode, Message: DecodeMessage(resp.Body)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewRequestError("decode response", err)
	}
	return nil
}

// IsSuccessStatus reports whether code is in the 2xx range.
func IsSuccessStatus(code int) bool {
	return code >= 200 && code < 300
}

// DecodeMessage pulls a {message} field out of an error response body.
// Returns "" when the body has no decodable message.
func DecodeMessage(body io.Reader) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		return ""
	}
	return envelope.Message
}
