// Package common defines shared helpers and sentinel errors used across the
// Outstagram client layers. Callers should use errors.Is to match the
// sentinels.
package common

import "errors"

// ErrUnavailable marks transport failures: the server could not be reached
// or did not answer in time.
var ErrUnavailable = errors.New("server unavailable")
