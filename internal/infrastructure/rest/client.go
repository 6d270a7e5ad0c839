package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/dentastore/backoffice-client/internal/session"
	"github.com/dentastore/backoffice-client/pkg/apperror"
)

const idempotencyKeyHeader = "Idempotency-Key"

// Client is the shared HTTP transport for every resource client: one base
// URL, JSON bodies, a bearer token attached from the session cell before each
// request, and global session invalidation on any 401.
type Client struct {
	baseURL        string
	http           *http.Client
	session        *session.Cell
	limiter        *rate.Limiter
	log            zerolog.Logger
	onUnauthorized func()
}

// Options configures a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Session *session.Cell
	Limiter *rate.Limiter
	Logger  zerolog.Logger
	// OnUnauthorized runs after the session has been cleared by a 401
	// response. The web client redirects to the login page here.
	OnUnauthorized func()
}

// NewClient creates the shared transport.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	limiter := opts.Limiter
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	onUnauthorized := opts.OnUnauthorized
	if onUnauthorized == nil {
		onUnauthorized = func() {}
	}
	return &Client{
		baseURL:        strings.TrimRight(opts.BaseURL, "/"),
		http:           &http.Client{Timeout: timeout},
		session:        opts.Session,
		limiter:        limiter,
		log:            opts.Logger,
		onUnauthorized: onUnauthorized,
	}
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return apperror.NewAppError(0, "request canceled")
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch {
		req.Header.Set(idempotencyKeyHeader, uuid.New().String())
	}
	c.attachToken(req)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return apperror.ErrConnectivity
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.session != nil {
			c.session.Clear()
		}
		c.onUnauthorized()
		return apperror.ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperror.NewAppError(resp.StatusCode, extractMessage(resp.Body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("malformed response body")
		return apperror.ErrConnectivity
	}
	return nil
}

func (c *Client) attachToken(req *http.Request) {
	if c.session == nil {
		return
	}
	token := c.session.Token()
	if token == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)

	// Unverified decode: expiry is only a hint, the backend still decides.
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err == nil {
		if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
			c.log.Debug().Time("expired_at", claims.ExpiresAt.Time).Msg("session token expired, expecting 401")
		}
	}
}

// extractMessage pulls the user-facing message out of a backend error body.
// The backend answers either {"message": "..."} or {"error": "..."}.
func extractMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
