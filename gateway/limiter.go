package gateway

import (
	"context"

	"golang.org/x/time/rate"
)

type RateLimiter interface {
	// Wait blocks until the limiter permits an event to happen.
	Wait(ctx context.Context) error
}

//NewLimiter returns a fixed-rate limiter allowing perSec messages per second.
//The dispatch loop waits on it between recipients so the gateway's
//throughput limit is never exceeded.
func NewLimiter(perSec int) RateLimiter {
	return rate.NewLimiter(rate.Limit(perSec), 1)
}
