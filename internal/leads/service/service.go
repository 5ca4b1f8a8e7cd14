// Package service orchestrates lead CRUD and scoring. It owns the mapping
// between storage rows, scoring records and transport DTOs; the scorers
// themselves stay pure.
package service

import (
	"context"
	"errors"

	"leaddesk_backend/internal/events"
	"leaddesk_backend/internal/leads/agent"
	"leaddesk_backend/internal/leads/domain"
	"leaddesk_backend/internal/leads/repository"
	"leaddesk_backend/internal/leads/scoring"
	"leaddesk_backend/internal/leads/transport"
	"leaddesk_backend/platform/apperr"

	"github.com/google/uuid"
)

const (
	defaultPage     = 1
	defaultPageSize = 50
)

type Service struct {
	repo      repository.LeadsRepository
	scorer    *scoring.Scorer
	evaluator *agent.Evaluator
	bus       events.Bus
}

func New(repo repository.LeadsRepository, scorer *scoring.Scorer, evaluator *agent.Evaluator, bus events.Bus) *Service {
	return &Service{repo: repo, scorer: scorer, evaluator: evaluator, bus: bus}
}

func (s *Service) Create(ctx context.Context, req transport.CreateLeadRequest) (transport.LeadResponse, error) {
	status := domain.ParseStatus(string(req.Status))

	lead, err := s.repo.Create(ctx, repository.CreateLeadParams{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Status:  string(status),
	})
	if err != nil {
		return transport.LeadResponse{}, mapRepositoryError(err, "leads.create")
	}

	if s.bus != nil {
		s.bus.Publish(ctx, events.LeadCreated{
			BaseEvent: events.NewBaseEvent(),
			LeadID:    lead.ID,
			Email:     lead.Email,
			Status:    lead.Status,
		})
	}

	return toLeadResponse(lead), nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.LeadResponse, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.LeadResponse{}, mapRepositoryError(err, "leads.get")
	}
	return toLeadResponse(lead), nil
}

func (s *Service) List(ctx context.Context, req transport.ListLeadsRequest) (transport.ListLeadsResponse, error) {
	page := req.Page
	if page < 1 {
		page = defaultPage
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	leads, err := s.repo.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return transport.ListLeadsResponse{}, mapRepositoryError(err, "leads.list")
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return transport.ListLeadsResponse{}, mapRepositoryError(err, "leads.list")
	}

	items := make([]transport.LeadResponse, 0, len(leads))
	for _, lead := range leads {
		items = append(items, toLeadResponse(lead))
	}

	return transport.ListLeadsResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateLeadRequest) (transport.LeadResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.LeadResponse{}, mapRepositoryError(err, "leads.update")
	}

	params := repository.UpdateLeadParams{
		Name:    existing.Name,
		Email:   existing.Email,
		Company: existing.Company,
		Status:  existing.Status,
	}
	if req.Name != nil {
		params.Name = *req.Name
	}
	if req.Email != nil {
		params.Email = *req.Email
	}
	if req.Company != nil {
		params.Company = *req.Company
	}
	if req.Status != nil {
		params.Status = string(domain.ParseStatus(string(*req.Status)))
	}

	lead, err := s.repo.Update(ctx, id, params)
	if err != nil {
		return transport.LeadResponse{}, mapRepositoryError(err, "leads.update")
	}

	if s.bus != nil {
		s.bus.Publish(ctx, events.LeadUpdated{
			BaseEvent: events.NewBaseEvent(),
			LeadID:    lead.ID,
			Status:    lead.Status,
		})
	}

	return toLeadResponse(lead), nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err, "leads.delete")
	}

	if s.bus != nil {
		s.bus.Publish(ctx, events.LeadDeleted{
			BaseEvent: events.NewBaseEvent(),
			LeadID:    id,
		})
	}

	return nil
}

// Score computes the deterministic rule-based quality score for a lead.
func (s *Service) Score(ctx context.Context, id uuid.UUID) (transport.ScoreResponse, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.ScoreResponse{}, mapRepositoryError(err, "leads.score")
	}

	score, factors := s.scorer.Explain(toRecord(lead))
	return transport.ScoreResponse{
		LeadID:  lead.ID,
		Score:   score,
		Factors: factors,
	}, nil
}

// AIScore computes the advisory AI score for a lead. Evaluation itself never
// fails; only an unknown lead produces an error.
func (s *Service) AIScore(ctx context.Context, id uuid.UUID) (transport.AIScoreResponse, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.AIScoreResponse{}, mapRepositoryError(err, "leads.ai_score")
	}

	evaluation := s.evaluator.Evaluate(ctx, toRecord(lead))
	return transport.AIScoreResponse{
		LeadID:    lead.ID,
		Score:     evaluation.Score,
		Reasoning: evaluation.Reasoning,
	}, nil
}

// toRecord maps a storage row to the scoring input. Required columns map to
// present fields; the scorers still treat blanks as absent.
func toRecord(lead repository.Lead) domain.Record {
	return domain.Record{
		Name:    &lead.Name,
		Email:   &lead.Email,
		Company: &lead.Company,
		Status:  domain.ParseStatus(lead.Status),
	}
}

func toLeadResponse(lead repository.Lead) transport.LeadResponse {
	return transport.LeadResponse{
		ID:        lead.ID,
		Name:      lead.Name,
		Email:     lead.Email,
		Company:   lead.Company,
		Status:    transport.LeadStatus(lead.Status),
		CreatedAt: lead.CreatedAt,
		UpdatedAt: lead.UpdatedAt,
	}
}

func mapRepositoryError(err error, op string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperr.NotFound("lead not found").WithOp(op)
	case errors.Is(err, repository.ErrDuplicateEmail):
		return apperr.Conflict("email already exists in our system").WithOp(op)
	default:
		return apperr.Wrap(apperr.KindInternal, "internal server error", err).WithOp(op)
	}
}
