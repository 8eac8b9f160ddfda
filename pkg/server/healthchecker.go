package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// HealthCheckerFunc adapts a function to a HealthChecker.
type HealthCheckerFunc func(ctx context.Context) bool

func (f HealthCheckerFunc) Healthy(ctx context.Context) bool {
	return f(ctx)
}

// NewOkHealthChecker reports healthy for as long as the process serves requests.
// The proxy keeps no state of its own, so there is nothing else to probe.
func NewOkHealthChecker() HealthChecker {
	return HealthCheckerFunc(func(context.Context) bool {
		return true
	})
}
