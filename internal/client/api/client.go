// Package api implements the client for the Outstagram HTTP API. The server
// is an opaque boundary; only the request/response shapes here are relied on.
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/outstagram/outstagram-cli/internal/client/session"
)

// LoginResult is the payload of a successful login.
type LoginResult struct {
	Token  string
	Expiry time.Time
	User   session.User
}

// Client defines the remote operations the client application performs.
//
// Contract:
//   - Login: POST /users/login, form-encoded email+password.
//   - Signup: POST /users/signup, form-encoded name+email+password; a
//     successful signup establishes no session.
//   - AddImage: PUT /images/addImage, multipart file+caption, credentials
//     attached.
//
// All methods honor context cancellation/timeouts.
type Client interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Signup(ctx context.Context, name, email, password string) error
	AddImage(ctx context.Context, filename string, file io.Reader, caption string) error
}

// TokenSource yields the auth token to attach to credentialed requests.
// An empty token means "send no credential". credentials.Repository.Token
// satisfies this signature.
type TokenSource func(ctx context.Context) (string, error)

// APIError is a non-2xx response. Message carries the server's response body
// verbatim (trimmed); it may be empty.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// Message extracts the server-provided human-readable message from err, or
// returns fallback when the error carries none. Network errors and empty
// bodies both fall back.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
