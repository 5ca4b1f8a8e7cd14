package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"leaddesk_backend/internal/events"
	"leaddesk_backend/internal/leads/agent"
	"leaddesk_backend/internal/leads/ports"
	"leaddesk_backend/internal/leads/repository"
	"leaddesk_backend/internal/leads/scoring"
	"leaddesk_backend/internal/leads/transport"
	"leaddesk_backend/platform/ai"
	"leaddesk_backend/platform/apperr"

	"github.com/google/uuid"
)

type fakeRepo struct {
	leads map[uuid.UUID]repository.Lead

	createErr error
	getErr    error

	lastCreate repository.CreateLeadParams
	lastUpdate repository.UpdateLeadParams
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{leads: map[uuid.UUID]repository.Lead{}}
}

func (f *fakeRepo) Create(ctx context.Context, params repository.CreateLeadParams) (repository.Lead, error) {
	if f.createErr != nil {
		return repository.Lead{}, f.createErr
	}
	f.lastCreate = params
	lead := repository.Lead{
		ID:        uuid.New(),
		Name:      params.Name,
		Email:     params.Email,
		Company:   params.Company,
		Status:    params.Status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.leads[lead.ID] = lead
	return lead, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (repository.Lead, error) {
	if f.getErr != nil {
		return repository.Lead{}, f.getErr
	}
	lead, ok := f.leads[id]
	if !ok {
		return repository.Lead{}, repository.ErrNotFound
	}
	return lead, nil
}

func (f *fakeRepo) List(ctx context.Context, limit, offset int) ([]repository.Lead, error) {
	out := make([]repository.Lead, 0, len(f.leads))
	for _, lead := range f.leads {
		out = append(out, lead)
	}
	return out, nil
}

func (f *fakeRepo) Count(ctx context.Context) (int, error) {
	return len(f.leads), nil
}

func (f *fakeRepo) Update(ctx context.Context, id uuid.UUID, params repository.UpdateLeadParams) (repository.Lead, error) {
	lead, ok := f.leads[id]
	if !ok {
		return repository.Lead{}, repository.ErrNotFound
	}
	f.lastUpdate = params
	lead.Name = params.Name
	lead.Email = params.Email
	lead.Company = params.Company
	lead.Status = params.Status
	f.leads[id] = lead
	return lead, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.leads[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.leads, id)
	return nil
}

type recordingBus struct {
	mu     sync.Mutex
	events []events.Event
}

func (b *recordingBus) Publish(ctx context.Context, event events.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *recordingBus) PublishSync(ctx context.Context, event events.Event) error {
	b.Publish(ctx, event)
	return nil
}

func (b *recordingBus) Subscribe(eventName string, handler events.Handler) {}

func (b *recordingBus) names() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.EventName())
	}
	return out
}

type staticChat struct{ reply string }

func (s staticChat) Complete(ctx context.Context, req ai.ChatRequest) (string, error) {
	return s.reply, nil
}

var _ ports.ChatModel = staticChat{}

func newService(repo *fakeRepo, bus events.Bus) *Service {
	evaluator := agent.NewEvaluator(staticChat{reply: "70 - decent lead"}, nil)
	return New(repo, scoring.Default(), evaluator, bus)
}

func TestCreateDefaultsStatus(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, nil)

	resp, err := svc.Create(context.Background(), transport.CreateLeadRequest{
		Name:    "Jane Doe",
		Email:   "jane@northwind.com",
		Company: "Northwind",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if resp.Status != transport.LeadStatusNew {
		t.Errorf("Status = %q, want %q", resp.Status, transport.LeadStatusNew)
	}
	if repo.lastCreate.Status != "new" {
		t.Errorf("persisted status = %q, want new", repo.lastCreate.Status)
	}
}

func TestCreatePublishesEvent(t *testing.T) {
	repo := newFakeRepo()
	bus := &recordingBus{}
	svc := newService(repo, bus)

	_, err := svc.Create(context.Background(), transport.CreateLeadRequest{
		Name:    "Jane Doe",
		Email:   "jane@northwind.com",
		Company: "Northwind",
		Status:  transport.LeadStatusContacted,
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	names := bus.names()
	if len(names) != 1 || names[0] != "leads.lead.created" {
		t.Errorf("published events = %v, want [leads.lead.created]", names)
	}
}

func TestCreateMapsDuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = repository.ErrDuplicateEmail
	svc := newService(repo, nil)

	_, err := svc.Create(context.Background(), transport.CreateLeadRequest{
		Name:    "Jane Doe",
		Email:   "jane@northwind.com",
		Company: "Northwind",
	})

	if !apperr.Is(err, apperr.KindConflict) {
		t.Errorf("error kind = %v, want conflict: %v", apperr.GetKind(err), err)
	}
}

func TestGetByIDMapsNotFound(t *testing.T) {
	svc := newService(newFakeRepo(), nil)

	_, err := svc.GetByID(context.Background(), uuid.New())

	if !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("error kind = %v, want not found: %v", apperr.GetKind(err), err)
	}
}

func TestGetByIDMapsUnexpectedErrors(t *testing.T) {
	repo := newFakeRepo()
	repo.getErr = errors.New("connection reset")
	svc := newService(repo, nil)

	_, err := svc.GetByID(context.Background(), uuid.New())

	if !apperr.Is(err, apperr.KindInternal) {
		t.Errorf("error kind = %v, want internal: %v", apperr.GetKind(err), err)
	}
}

func TestUpdateMergesPartialFields(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, nil)

	created, err := svc.Create(context.Background(), transport.CreateLeadRequest{
		Name:    "Jane Doe",
		Email:   "jane@northwind.com",
		Company: "Northwind",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	status := transport.LeadStatusConverted
	updated, err := svc.Update(context.Background(), created.ID, transport.UpdateLeadRequest{
		Status: &status,
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if updated.Status != transport.LeadStatusConverted {
		t.Errorf("Status = %q, want converted", updated.Status)
	}
	if updated.Name != "Jane Doe" || updated.Email != "jane@northwind.com" {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestUpdateNormalizesUnknownStatus(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, nil)

	created, err := svc.Create(context.Background(), transport.CreateLeadRequest{
		Name:    "Jane Doe",
		Email:   "jane@northwind.com",
		Company: "Northwind",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	bogus := transport.LeadStatus("qualified")
	updated, err := svc.Update(context.Background(), created.ID, transport.UpdateLeadRequest{
		Status: &bogus,
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if updated.Status != transport.LeadStatusNew {
		t.Errorf("Status = %q, want fallback to new", updated.Status)
	}
}

func TestDeletePublishesEvent(t *testing.T) {
	repo := newFakeRepo()
	bus := &recordingBus{}
	svc := newService(repo, bus)

	created, err := svc.Create(context.Background(), transport.CreateLeadRequest{
		Name:    "Jane Doe",
		Email:   "jane@northwind.com",
		Company: "Northwind",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}

	names := bus.names()
	want := []string{"leads.lead.created", "leads.lead.deleted"}
	if len(names) != len(want) {
		t.Fatalf("published events = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("event[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestDeleteMissingLead(t *testing.T) {
	svc := newService(newFakeRepo(), nil)

	err := svc.Delete(context.Background(), uuid.New())

	if !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("error kind = %v, want not found: %v", apperr.GetKind(err), err)
	}
}

func TestListDefaultsPagination(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, nil)

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		if _, err := svc.Create(context.Background(), transport.CreateLeadRequest{
			Name:    "Jane Doe",
			Email:   email,
			Company: "Northwind",
		}); err != nil {
			t.Fatalf("Create() error: %v", err)
		}
	}

	resp, err := svc.List(context.Background(), transport.ListLeadsRequest{})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	if resp.Page != 1 || resp.PageSize != 50 {
		t.Errorf("pagination defaults = page %d size %d, want 1 and 50", resp.Page, resp.PageSize)
	}
	if resp.Total != 3 || len(resp.Items) != 3 {
		t.Errorf("Total = %d, Items = %d, want 3 and 3", resp.Total, len(resp.Items))
	}
}

func TestScoreUsesRuleEngine(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, nil)

	created, err := svc.Create(context.Background(), transport.CreateLeadRequest{
		Name:    "John Smith",
		Email:   "john.smith@ibm.com",
		Company: "IBM Corp",
		Status:  transport.LeadStatusConverted,
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	resp, err := svc.Score(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Score() error: %v", err)
	}

	if resp.LeadID != created.ID {
		t.Errorf("LeadID = %v, want %v", resp.LeadID, created.ID)
	}
	if resp.Score != 100 {
		t.Errorf("Score = %d, want 100", resp.Score)
	}
	if len(resp.Factors) == 0 {
		t.Error("Factors is empty")
	}
}

func TestAIScoreReturnsEvaluation(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, nil)

	created, err := svc.Create(context.Background(), transport.CreateLeadRequest{
		Name:    "Jane Doe",
		Email:   "jane@northwind.com",
		Company: "Northwind",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	resp, err := svc.AIScore(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("AIScore() error: %v", err)
	}

	if resp.Score != 70 {
		t.Errorf("Score = %d, want 70", resp.Score)
	}
	if resp.Reasoning != "70 - decent lead" {
		t.Errorf("Reasoning = %q", resp.Reasoning)
	}
}

func TestAIScoreMissingLead(t *testing.T) {
	svc := newService(newFakeRepo(), nil)

	_, err := svc.AIScore(context.Background(), uuid.New())

	if !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("error kind = %v, want not found: %v", apperr.GetKind(err), err)
	}
}
