// Package leads wires up the leads bounded context: repository, scoring,
// AI evaluation, service and HTTP handlers.
package leads

import (
	"context"
	"fmt"

	"leaddesk_backend/internal/events"
	apphttp "leaddesk_backend/internal/http"
	"leaddesk_backend/internal/leads/agent"
	"leaddesk_backend/internal/leads/handler"
	"leaddesk_backend/internal/leads/ports"
	"leaddesk_backend/internal/leads/repository"
	"leaddesk_backend/internal/leads/scoring"
	"leaddesk_backend/internal/leads/service"
	"leaddesk_backend/platform/ai/gemini"
	"leaddesk_backend/platform/ai/moonshot"
	"leaddesk_backend/platform/config"
	"leaddesk_backend/platform/logger"
	"leaddesk_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module bundles the leads domain for registration with the HTTP layer.
type Module struct {
	service *service.Service
	handler *handler.Handler
	log     *logger.Logger
}

// NewModule constructs the leads module with all its dependencies.
// The chat model backing the AI evaluator is selected by configuration.
func NewModule(ctx context.Context, pool *pgxpool.Pool, bus events.Bus, val *validator.Validator, cfg config.AIConfig, log *logger.Logger) (*Module, error) {
	chat, err := newChatModel(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("leads module: %w", err)
	}

	repo := repository.New(pool)
	scorer := scoring.Default()
	evaluator := agent.NewEvaluator(chat, log)
	svc := service.New(repo, scorer, evaluator, bus)

	m := &Module{
		service: svc,
		handler: handler.New(svc, val),
		log:     log,
	}
	m.registerHandlers(bus)

	return m, nil
}

func newChatModel(ctx context.Context, cfg config.AIConfig) (ports.ChatModel, error) {
	switch cfg.GetAIProvider() {
	case "gemini":
		return gemini.New(ctx, gemini.Config{
			APIKey: cfg.GetGeminiAPIKey(),
			Model:  cfg.GetGeminiModel(),
		})
	default:
		return moonshot.New(moonshot.Config{
			APIKey:  cfg.GetMoonshotAPIKey(),
			BaseURL: cfg.GetMoonshotBaseURL(),
			Model:   cfg.GetMoonshotModel(),
		}), nil
	}
}

// registerHandlers subscribes to domain events. New leads get an advisory AI
// evaluation in the background; the result is logged, never persisted.
func (m *Module) registerHandlers(bus events.Bus) {
	bus.Subscribe(events.LeadCreated{}.EventName(), events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		created, ok := event.(events.LeadCreated)
		if !ok {
			return nil
		}

		resp, err := m.service.AIScore(ctx, created.LeadID)
		if err != nil {
			m.log.Warn("ai evaluation for new lead skipped", "leadId", created.LeadID, "error", err)
			return nil
		}

		m.log.Info("new lead evaluated",
			"leadId", created.LeadID,
			"score", resp.Score,
			"reasoning", resp.Reasoning,
		)
		return nil
	}))
}

// Name implements the http Module interface.
func (m *Module) Name() string { return "leads" }

// RegisterRoutes mounts the leads routes under /api/v1/leads.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/leads"))
}

// Service exposes the leads service for other composition-root consumers.
func (m *Module) Service() *service.Service { return m.service }
