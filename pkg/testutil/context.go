package testutil

import (
	"context"
	"net/http"
	"time"

	"github.com/deidexdd-hash/mysticbot/pkg/requestcontext"
)

// WithRequestID tags a request the way the request id middleware would.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}

// WithTime pins the request clock so "current year" defaults are stable.
func WithTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}

// FixedContext returns a background context with a pinned clock.
func FixedContext(now time.Time) context.Context {
	return requestcontext.WithTime(context.Background(), now)
}
