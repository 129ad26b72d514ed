package completion

import (
	"context"
	"fmt"
)

// MockClient is a deterministic Client for development and testing.
type MockClient struct{}

// NewMockClient creates a new mock completion client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Ensure MockClient implements Client.
var _ Client = (*MockClient)(nil)

// Complete echoes a canned reply referencing the user's message.
func (m *MockClient) Complete(ctx context.Context, userMessage string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}
	return fmt.Sprintf("Mock medical assistant reply to: %q. For anything serious, please consult a doctor.", userMessage), nil
}
