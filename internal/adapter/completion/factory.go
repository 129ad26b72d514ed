package completion

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

const (
	// EnvMode is the environment variable name for mode selection.
	EnvMode = "AIDOCTOR_MODE"
	// ModeMock indicates the mock client should be used.
	ModeMock = "MOCK"
)

// NewClient creates a completion client based on AIDOCTOR_MODE. MOCK yields
// a deterministic in-process client for development without upstream
// credentials; anything else yields the real Gemini client.
func NewClient(baseURL, model, apiKey string, timeout time.Duration, logger zerolog.Logger) Client {
	if os.Getenv(EnvMode) == ModeMock {
		logger.Info().Msg("AIDOCTOR_MODE=MOCK detected, using mock completion client")
		return NewMockClient()
	}
	return NewGeminiClient(baseURL, model, apiKey, timeout)
}
