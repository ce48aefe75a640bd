package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/domain/billing"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/domain/content"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/domain/event"
	apperrors "github.com/RedPanda-08/AI-Content-Generator-sub000/pkg/errors"
)

var errStore = errors.New("store unavailable")

type fakeEventRepo struct {
	mu         sync.Mutex
	events     map[uuid.UUID]*event.ScheduledEvent
	failCreate bool
	failDue    bool
	failMark   map[uuid.UUID]bool
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		events:   make(map[uuid.UUID]*event.ScheduledEvent),
		failMark: make(map[uuid.UUID]bool),
	}
}

func (r *fakeEventRepo) Create(ctx context.Context, e *event.ScheduledEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate {
		return errStore
	}
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *fakeEventRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]event.ScheduledEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []event.ScheduledEvent
	for _, e := range r.events {
		if e.OwnerID == ownerID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	return out, nil
}

func (r *fakeEventRepo) DeleteByOwner(ctx context.Context, ownerID, eventID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.events[eventID]; ok && e.OwnerID == ownerID {
		delete(r.events, eventID)
	}
	return nil
}

func (r *fakeEventRepo) ListDueUnscoped(ctx context.Context, now time.Time) ([]event.ScheduledEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failDue {
		return nil, errStore
	}
	var out []event.ScheduledEvent
	for _, e := range r.events {
		if e.Status == event.StatusPending && !e.ScheduledAt.After(now) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) MarkNotified(ctx context.Context, eventID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failMark[eventID] {
		return false, errStore
	}
	e, ok := r.events[eventID]
	if !ok || e.Status != event.StatusPending {
		return false, nil
	}
	e.Status = event.StatusNotified
	return true, nil
}

func (r *fakeEventRepo) get(id uuid.UUID) (event.ScheduledEvent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return event.ScheduledEvent{}, false
	}
	return *e, true
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu      sync.Mutex
	sent    []sentMail
	failFor map[string]bool
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{failFor: make(map[string]bool)}
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	if m.failFor[to] {
		return errors.New("smtp refused")
	}
	return nil
}

type fakeContentRepo struct {
	mu       sync.Mutex
	items    []content.GeneratedContent
	profiles map[uuid.UUID]content.BrandProfile
	failSave bool
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{profiles: make(map[uuid.UUID]content.BrandProfile)}
}

func (r *fakeContentRepo) CreateContent(ctx context.Context, c *content.GeneratedContent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSave {
		return errStore
	}
	r.items = append(r.items, *c)
	return nil
}

func (r *fakeContentRepo) ListContentByOwner(ctx context.Context, ownerID uuid.UUID) ([]content.GeneratedContent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []content.GeneratedContent
	for _, c := range r.items {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeContentRepo) GetBrandProfile(ctx context.Context, ownerID uuid.UUID) (content.BrandProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[ownerID]
	if !ok {
		return content.BrandProfile{}, apperrors.ErrNotFound
	}
	return p, nil
}

func (r *fakeContentRepo) UpsertBrandProfile(ctx context.Context, p *content.BrandProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.OwnerID] = *p
	return nil
}

type fakeCreditRepo struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]int
}

func newFakeCreditRepo() *fakeCreditRepo {
	return &fakeCreditRepo{accounts: make(map[uuid.UUID]int)}
}

func (r *fakeCreditRepo) GetOrSeed(ctx context.Context, ownerID uuid.UUID, seed int) (billing.CreditAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[ownerID]; !ok {
		r.accounts[ownerID] = seed
	}
	return billing.CreditAccount{OwnerID: ownerID, Remaining: r.accounts[ownerID]}, nil
}

func (r *fakeCreditRepo) Decrement(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.accounts[ownerID] <= 0 {
		return false, nil
	}
	r.accounts[ownerID]--
	return true, nil
}

func (r *fakeCreditRepo) Refund(ctx context.Context, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[ownerID]++
	return nil
}

type fakeCompleter struct {
	mu      sync.Mutex
	prompts []string
	output  string
	err     error
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}
