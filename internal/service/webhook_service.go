package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
	"github.com/onurcolak/gateway-dashboard/internal/hooks"
	"github.com/onurcolak/gateway-dashboard/internal/listview"
	"github.com/onurcolak/gateway-dashboard/pkg/validator"
)

type webhookRepository interface {
	List(ctx context.Context) ([]domain.Webhook, error)
	GetByID(ctx context.Context, id string) (*domain.Webhook, error)
	Create(ctx context.Context, webhook domain.Webhook) (*domain.Webhook, error)
	Update(ctx context.Context, id string, fn func(*domain.Webhook)) (*domain.Webhook, error)
	Delete(ctx context.Context, id string) error
}

type webhookTester interface {
	Test(ctx context.Context, url string) domain.WebhookTestResult
}

type WebhookService struct {
	repo   webhookRepository
	tester webhookTester
	hooks  hooks.Hooks
}

func NewWebhookService(repo webhookRepository, tester webhookTester, h hooks.Hooks) *WebhookService {
	return &WebhookService{repo: repo, tester: tester, hooks: h}
}

type WebhookInput struct {
	URL         string
	Description string
	Events      []string
}

func (s *WebhookService) List(ctx context.Context, q listview.Query) (listview.Result[domain.WebhookRow], error) {
	webhooks, err := s.repo.List(ctx)
	if err != nil {
		return listview.Result[domain.WebhookRow]{}, fmt.Errorf("failed to list webhooks: %w", err)
	}

	return listview.Map(listview.Apply(webhooks, listview.Webhooks, q), domain.NewWebhookRow), nil
}

func (s *WebhookService) Get(ctx context.Context, id string) (*domain.WebhookRow, error) {
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	row := domain.NewWebhookRow(*w)
	return &row, nil
}

// Create adds an active webhook that has never been triggered.
func (s *WebhookService) Create(ctx context.Context, in WebhookInput) (*domain.WebhookRow, error) {
	created, err := s.repo.Create(ctx, domain.Webhook{
		ID:          uuid.NewString(),
		URL:         strings.TrimSpace(in.URL),
		Description: in.Description,
		Events:      slices.Clone(in.Events),
		Status:      domain.WebhookStatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook: %w", err)
	}

	s.hooks.OnCreate(ctx, domain.KindWebhook, *created)

	row := domain.NewWebhookRow(*created)
	return &row, nil
}

// Update replaces the editable fields. A saved webhook is active again.
func (s *WebhookService) Update(ctx context.Context, id string, in WebhookInput) (*domain.WebhookRow, error) {
	updated, err := s.repo.Update(ctx, id, func(w *domain.Webhook) {
		w.URL = strings.TrimSpace(in.URL)
		w.Description = in.Description
		w.Events = slices.Clone(in.Events)
		w.Status = domain.WebhookStatusActive
	})
	if err != nil {
		return nil, err
	}

	s.hooks.OnEdit(ctx, domain.KindWebhook, id, *updated)

	row := domain.NewWebhookRow(*updated)
	return &row, nil
}

func (s *WebhookService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.hooks.OnDelete(ctx, domain.KindWebhook, id)
	return nil
}

// Test probes url. It does not need a saved webhook.
func (s *WebhookService) Test(ctx context.Context, url string) (domain.WebhookTestResult, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return domain.WebhookTestResult{}, validator.FieldError("url", "URL is required for testing")
	}

	return s.tester.Test(ctx, url), nil
}

func (s *WebhookService) EventTypes() []domain.EventType {
	return slices.Clone(domain.EventTypes)
}
