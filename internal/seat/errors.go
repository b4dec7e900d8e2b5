package seat

import "errors"

// ErrInvalidAction is returned by ValidateAction for any illegal
// action-kind/amount combination. The engine package re-exports it
// rather than wrapping it again, so callers can errors.Is against a
// single sentinel.
var ErrInvalidAction = errors.New("invalid action")
