package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
)

// CatalogRepository serves the read-only composer data: recipients and
// message templates.
type CatalogRepository struct {
	recipients []domain.Recipient
	templates  []domain.Template
}

func NewCatalogRepository(recipients []domain.Recipient, templates []domain.Template) *CatalogRepository {
	return &CatalogRepository{
		recipients: slices.Clone(recipients),
		templates:  slices.Clone(templates),
	}
}

func (r *CatalogRepository) Recipients(ctx context.Context) ([]domain.Recipient, error) {
	return slices.Clone(r.recipients), nil
}

func (r *CatalogRepository) Templates(ctx context.Context) ([]domain.Template, error) {
	out := make([]domain.Template, len(r.templates))
	for i, t := range r.templates {
		t.Variables = slices.Clone(t.Variables)
		out[i] = t
	}
	return out, nil
}

func (r *CatalogRepository) TemplateByID(ctx context.Context, id string) (*domain.Template, error) {
	for _, t := range r.templates {
		if t.ID == id {
			found := t
			found.Variables = slices.Clone(t.Variables)
			return &found, nil
		}
	}
	return nil, fmt.Errorf("template %s: %w", id, domain.ErrNotFound)
}

// RecipientsByID resolves ids in order and reports the ids it could not find.
func (r *CatalogRepository) RecipientsByID(ctx context.Context, ids []string) ([]domain.Recipient, []string) {
	var (
		found   []domain.Recipient
		missing []string
	)

	for _, id := range ids {
		idx := slices.IndexFunc(r.recipients, func(rc domain.Recipient) bool { return rc.ID == id })
		if idx < 0 {
			missing = append(missing, id)
			continue
		}
		if slices.ContainsFunc(found, func(rc domain.Recipient) bool { return rc.ID == id }) {
			continue
		}
		found = append(found, r.recipients[idx])
	}

	return found, missing
}
