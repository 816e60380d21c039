package ports

import "context"

// LoginThrottle counts failed login attempts per email and blocks further
// attempts once a limit is reached. It is a best-effort guard: callers
// treat throttle errors as a degraded path and proceed with the login.
type LoginThrottle interface {
	Blocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
