// Package completion provides the client for the external text-completion
// service.
package completion

import "context"

// Client defines the completion operation: one synchronous call per user
// message, no retry, no streaming, no caching. Implementations must never
// leak transport-level errors in any form other than a plain error return.
type Client interface {
	Complete(ctx context.Context, userMessage string) (string, error)
}

// Ensure GeminiClient implements Client.
var _ Client = (*GeminiClient)(nil)
