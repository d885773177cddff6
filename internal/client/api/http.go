package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/outstagram/outstagram-cli/internal/client/session"
	"github.com/outstagram/outstagram-cli/internal/common"
	"github.com/outstagram/outstagram-cli/internal/logging"
)

const defaultTimeout = 15 * time.Second

// HTTPClient talks to the Outstagram API over plain HTTP.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewHTTPClient builds a client for the API rooted at baseURL. tokens may be
// nil for a client that never attaches credentials; log may be nil.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = logging.NopLogger{}
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// loginResponse is the wire shape of a successful login: the auth token, its
// expiry as an ISO-8601 string, and the authenticated user.
type loginResponse struct {
	Token  string       `json:"token"`
	Expiry string       `json:"expiry"`
	User   session.User `json:"user"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	resp, err := c.postForm(ctx, "/users/login", form, true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}

	expiry, err := time.Parse(time.RFC3339, body.Expiry)
	if err != nil {
		return nil, fmt.Errorf("parse login expiry: %w", err)
	}

	return &LoginResult{Token: body.Token, Expiry: expiry, User: body.User}, nil
}

func (c *HTTPClient) Signup(ctx context.Context, name, email, password string) error {
	form := url.Values{}
	form.Set("name", name)
	form.Set("email", email)
	form.Set("password", password)

	resp, err := c.postForm(ctx, "/users/signup", form, false)
	if err != nil {
		return err
	}
	// Success body is ignored.
	return drain(resp)
}

func (c *HTTPClient) AddImage(ctx context.Context, filename string, file io.Reader, caption string) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("build upload payload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("read image: %w", err)
	}
	if err := w.WriteField("caption", caption); err != nil {
		return fmt.Errorf("build upload payload: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("build upload payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/images/addImage", &buf)
	if err != nil {
		return fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.do(ctx, req, true)
	if err != nil {
		return err
	}
	return drain(resp)
}

// postForm issues a form-encoded POST. withCredentials attaches the stored
// auth token as the logintoken cookie, the way the browser client turns on
// axios withCredentials.
func (c *HTTPClient) postForm(ctx context.Context, path string, form url.Values, withCredentials bool) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(ctx, req, withCredentials)
}

func (c *HTTPClient) do(ctx context.Context, req *http.Request, withCredentials bool) (*http.Response, error) {
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	if withCredentials && c.tokens != nil {
		token, err := c.tokens(ctx)
		if err != nil {
			return nil, fmt.Errorf("read stored token: %w", err)
		}
		if token != "" {
			req.AddCookie(&http.Cookie{Name: "logintoken", Value: token})
		}
	}

	c.log.Debug(ctx, "api request", "method", req.Method, "url", req.URL.String(), "req_id", reqID)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, common.ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Warn(ctx, "api request failed",
			"method", req.Method, "url", req.URL.String(), "status", resp.StatusCode, "req_id", reqID)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	return resp, nil
}

func drain(resp *http.Response) error {
	defer resp.Body.Close()
	_, err := io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	return err
}

var _ Client = (*HTTPClient)(nil)
