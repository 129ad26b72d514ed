// Package service implements the session orchestrator: the authenticated
// chat-turn flow and the conversation history read.
package service

import (
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jyotimcanitrr/Your-AI-Doctor-Application/internal/adapter/completion"
	"github.com/jyotimcanitrr/Your-AI-Doctor-Application/internal/config"
	store "github.com/jyotimcanitrr/Your-AI-Doctor-Application/internal/repository"
)

type Service struct {
	store      store.Store
	completion completion.Client
	config     *config.Config
	logger     zerolog.Logger
	tracer     trace.Tracer

	turns             metric.Int64Counter
	fallbacks         metric.Int64Counter
	completionLatency metric.Float64Histogram
}

func New(st store.Store, cc completion.Client, cfg *config.Config, logger zerolog.Logger, tracer trace.Tracer, meter metric.Meter) *Service {
	turns, err := meter.Int64Counter("chat.turns",
		metric.WithDescription("Completed chat turns"))
	if err != nil {
		logger.Warn().Err(err).Msg("failed to create turns counter")
	}
	fallbacks, err := meter.Int64Counter("chat.completion_fallbacks",
		metric.WithDescription("Chat turns answered with the fallback notice"))
	if err != nil {
		logger.Warn().Err(err).Msg("failed to create fallbacks counter")
	}
	latency, err := meter.Float64Histogram("chat.completion_latency_ms",
		metric.WithDescription("Upstream completion latency in milliseconds"))
	if err != nil {
		logger.Warn().Err(err).Msg("failed to create latency histogram")
	}

	return &Service{
		store:             st,
		completion:        cc,
		config:            cfg,
		logger:            logger,
		tracer:            tracer,
		turns:             turns,
		fallbacks:         fallbacks,
		completionLatency: latency,
	}
}
