package backend

// Package backend contains HTTP adapters for the remote library backend.
// Every adapter here is a thin request/response wrapper: construct the
// request, unwrap the response, map failures onto the app error taxonomy.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	apperrors "github.com/biblionet/ui-api/internal/errors"
)

const defaultTimeout = 10 * time.Second

// maxErrorBody bounds how much of an error response body is read for the
// error message.
const maxErrorBody = 4 << 10

// Config controls the backend HTTP client.
type Config struct {
	// BaseURL is the backend's base URL, e.g. "http://localhost:4000".
	BaseURL string
	// Timeout bounds each request end to end. Zero means the default.
	Timeout time.Duration
	// HTTPClient overrides the underlying client (tests). When set, BaseURL
	// is still required but Timeout is ignored.
	HTTPClient *http.Client
}

// Client is the shared HTTP client for all backend resource adapters.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient constructs a backend client. A cookie jar is attached so the
// backend may set auxiliary cookies across the login round trips.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSuffix(cfg.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("backend base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("parse backend base URL: %w", err)
	}

	httpc := cfg.HTTPClient
	if httpc == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpc = &http.Client{Jar: jar, Timeout: timeout}
	}

	return &Client{baseURL: base, httpc: httpc}, nil
}

// request describes one backend call.
type request struct {
	method string
	path   string
	query  url.Values
	token  string // bearer credential; empty for unauthenticated calls
	body   any    // JSON-encoded when non-nil
	form   *multipartForm
}

// multipartForm carries fields and an optional file for multipart requests.
type multipartForm struct {
	fields   map[string]string
	fileName string // part name for the file
	filename string
	file     []byte
}

// do executes a backend call and decodes the JSON response into out (when
// non-nil). Non-2xx responses and transport failures come back as AppErrors.
func (c *Client) do(ctx context.Context, req request, out any) error {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return err
	}

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return apperrors.MapBackendError(err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close on a read-only body

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.MapBackendStatus(resp.StatusCode, errorMessage(resp.Body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeBackend, "decode backend response")
	}
	return nil
}

func (c *Client) buildRequest(ctx context.Context, req request) (*http.Request, error) {
	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case req.form != nil:
		buf, ct, err := encodeMultipart(req.form)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode multipart body")
		}
		body, contentType = buf, ct
	case req.body != nil:
		data, err := json.Marshal(req.body)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request body")
		}
		body, contentType = bytes.NewReader(data), "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "build backend request")
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}
	return httpReq, nil
}

func encodeMultipart(form *multipartForm) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range form.fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}
	if len(form.file) > 0 {
		part, err := w.CreateFormFile(form.fileName, form.filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(form.file); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

// errorMessage extracts a human-readable message from an error response body.
// The backend answers either {"message": "..."} or plain text.
func errorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return strings.TrimSpace(string(data))
}
