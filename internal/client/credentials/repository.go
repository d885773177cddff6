// Package credentials persists the authenticated user's identity and auth
// token to durable local storage, playing the role a browser cookie jar plays
// for the web client: entries are scoped to path "/", carry an expiry, and
// the auth token is marked http-only (not readable by the identity path).
package credentials

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/outstagram/outstagram-cli/internal/client/session"
)

// Cookie names. "token" is a legacy name still cleared on logout.
const (
	userInfoCookie    = "userinfo"
	loginTokenCookie  = "logintoken"
	legacyTokenCookie = "token"
)

// Repository stores and retrieves the persisted credential pair.
//
// Contract:
//   - Save writes userinfo and logintoken together with a shared expiry.
//   - Load returns the stored identity, or nil when absent or malformed.
//     It never fails on bad stored data and it deliberately does not check
//     whether a live logintoken accompanies the identity; the web client
//     cannot read the http-only token either, so a dangling userinfo entry
//     is treated as a valid session. Known trust boundary, kept as is.
//   - Token returns the stored auth token if it has not expired, else "".
//   - Clear removes all credential entries; removing absent entries is fine.
type Repository interface {
	Save(ctx context.Context, user session.User, token string, expiry time.Time) error
	Load(ctx context.Context) (*session.User, error)
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// encodeUserInfo serializes the user the way the server's Set-Cookie does:
// JSON with every double quote replaced by a single quote, so the value
// survives cookie encoding.
func encodeUserInfo(user session.User) (string, error) {
	b, err := json.Marshal(user)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(string(b), `"`, `'`), nil
}

// decodeUserInfo parses a stored userinfo value. Values may use the
// single-quote pseudo-JSON form or plain JSON; single quotes are normalized
// before parsing.
func decodeUserInfo(value string) (*session.User, error) {
	normalized := strings.ReplaceAll(value, `'`, `"`)
	var user session.User
	if err := json.Unmarshal([]byte(normalized), &user); err != nil {
		return nil, err
	}
	return &user, nil
}
