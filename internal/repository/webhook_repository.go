package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
)

// WebhookRepository is the local state of the webhook configuration screen.
type WebhookRepository struct {
	mu       sync.RWMutex
	webhooks []domain.Webhook
}

func NewWebhookRepository(webhooks []domain.Webhook) *WebhookRepository {
	cloned := make([]domain.Webhook, len(webhooks))
	for i, w := range webhooks {
		cloned[i] = cloneWebhook(w)
	}
	return &WebhookRepository{webhooks: cloned}
}

func (r *WebhookRepository) List(ctx context.Context) ([]domain.Webhook, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Webhook, len(r.webhooks))
	for i, w := range r.webhooks {
		out[i] = cloneWebhook(w)
	}
	return out, nil
}

func (r *WebhookRepository) GetByID(ctx context.Context, id string) (*domain.Webhook, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("webhook %s: %w", id, domain.ErrNotFound)
	}

	found := cloneWebhook(r.webhooks[idx])
	return &found, nil
}

func (r *WebhookRepository) Create(ctx context.Context, webhook domain.Webhook) (*domain.Webhook, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(webhook.ID) >= 0 {
		return nil, fmt.Errorf("webhook %s already exists", webhook.ID)
	}

	r.webhooks = append(r.webhooks, cloneWebhook(webhook))
	return &webhook, nil
}

// Update applies fn to the stored webhook and returns the result.
func (r *WebhookRepository) Update(ctx context.Context, id string, fn func(*domain.Webhook)) (*domain.Webhook, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("webhook %s: %w", id, domain.ErrNotFound)
	}

	fn(&r.webhooks[idx])
	updated := cloneWebhook(r.webhooks[idx])
	return &updated, nil
}

func (r *WebhookRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("webhook %s: %w", id, domain.ErrNotFound)
	}

	r.webhooks = slices.Delete(r.webhooks, idx, idx+1)
	return nil
}

func (r *WebhookRepository) indexOf(id string) int {
	return slices.IndexFunc(r.webhooks, func(w domain.Webhook) bool { return w.ID == id })
}

func cloneWebhook(w domain.Webhook) domain.Webhook {
	w.Events = slices.Clone(w.Events)
	if w.LastTriggered != nil {
		t := *w.LastTriggered
		w.LastTriggered = &t
	}
	return w
}
