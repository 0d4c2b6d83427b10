package api

import (
	"context"
	"time"
)

const (
	// QueryTimeout bounds the mongo lookups behind a single report
	QueryTimeout = 10 * time.Second
	// ShutdownTimeout is how long in-flight requests get to finish on shutdown
	ShutdownTimeout = 10 * time.Second
)

// WithQueryTimeout creates a context with query timeout. A parent that
// already has an earlier deadline keeps it.
func WithQueryTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, QueryTimeout)
}
