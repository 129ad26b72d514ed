package service

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jyotimcanitrr/Your-AI-Doctor-Application/internal/domain"
)

// FallbackNotice is stored and returned in place of the assistant reply when
// the completion call fails. The turn still succeeds from the caller's side.
const FallbackNotice = "I apologize, but I'm having trouble processing your request. Please try rephrasing your question or consult a healthcare professional for immediate assistance."

// Chat runs one conversation turn for an already-verified identity: persist
// the user message, obtain the assistant reply (fallback on completion
// failure), persist it, return it.
//
// The user message is written before the completion call, so history is
// never silently lossy on an upstream outage. If the assistant append fails
// afterwards the user message stays; there is no compensating rollback.
func (s *Service) Chat(ctx context.Context, userID, message string) (string, error) {
	if message == "" {
		return "", domain.ErrEmptyMessage
	}

	ctx, span := s.tracer.Start(ctx, "chat.turn")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", userID))

	if _, err := s.store.AppendMessage(ctx, userID, domain.RoleUser, message); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to persist user message")
		return "", fmt.Errorf("failed to persist user message: %w", err)
	}

	reply := s.complete(ctx, message)

	if _, err := s.store.AppendMessage(ctx, userID, domain.RoleAssistant, reply); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to persist assistant message")
		return "", fmt.Errorf("failed to persist assistant message: %w", err)
	}

	s.turns.Add(ctx, 1)
	return reply, nil
}

// complete invokes the upstream completion and degrades to the fallback
// notice on any failure, including timeout.
func (s *Service) complete(ctx context.Context, message string) string {
	ctx, span := s.tracer.Start(ctx, "chat.completion")
	defer span.End()

	start := time.Now()
	text, err := s.completion.Complete(ctx, message)
	s.completionLatency.Record(ctx, float64(time.Since(start).Milliseconds()))

	if err != nil {
		s.logger.Warn().Err(err).Msg("completion failed, using fallback notice")
		s.fallbacks.Add(ctx, 1)
		span.SetAttributes(attribute.Bool("completion.fallback", true))
		return FallbackNotice
	}
	return text
}

// History returns the caller's conversation, oldest first. Stateless and
// idempotent: repeated calls with no intervening writes return identical
// sequences.
func (s *Service) History(ctx context.Context, userID string) ([]domain.Message, error) {
	messages, err := s.store.History(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to read history")
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	return messages, nil
}
