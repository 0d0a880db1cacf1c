package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
	"github.com/onurcolak/gateway-dashboard/internal/hooks"
	"github.com/onurcolak/gateway-dashboard/internal/listview"
)

type credentialRepository interface {
	List(ctx context.Context) ([]domain.Credential, error)
	GetByID(ctx context.Context, id string) (*domain.Credential, error)
	Create(ctx context.Context, credential domain.Credential) (*domain.Credential, error)
	Update(ctx context.Context, id string, fn func(*domain.Credential)) (*domain.Credential, error)
	Delete(ctx context.Context, id string) error
}

type CredentialService struct {
	repo  credentialRepository
	hooks hooks.Hooks
	now   func() time.Time
}

func NewCredentialService(repo credentialRepository, h hooks.Hooks) *CredentialService {
	return &CredentialService{repo: repo, hooks: h, now: time.Now}
}

type CredentialInput struct {
	Name        string
	Permissions []string
}

// List masks every secret the view has not revealed.
func (s *CredentialService) List(ctx context.Context, q listview.Query, revealed func(id string) bool) (listview.Result[domain.CredentialRow], error) {
	credentials, err := s.repo.List(ctx)
	if err != nil {
		return listview.Result[domain.CredentialRow]{}, fmt.Errorf("failed to list credentials: %w", err)
	}

	result := listview.Apply(credentials, listview.Credentials, q)
	return listview.Map(result, func(c domain.Credential) domain.CredentialRow {
		return domain.NewCredentialRow(c, revealed(c.ID))
	}), nil
}

func (s *CredentialService) Get(ctx context.Context, id string, revealed bool) (*domain.CredentialRow, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	row := domain.NewCredentialRow(*c, revealed)
	return &row, nil
}

// Create issues a new active key pair. The secret is shown in the response.
func (s *CredentialService) Create(ctx context.Context, in CredentialInput) (*domain.CredentialRow, error) {
	now := s.now().UTC()
	key, secret := newKeyPair()

	created, err := s.repo.Create(ctx, domain.Credential{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Key:         key,
		Secret:      secret,
		Created:     now,
		LastUsed:    now,
		Permissions: slices.Clone(in.Permissions),
		Active:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create credential: %w", err)
	}

	s.hooks.OnCreate(ctx, domain.KindCredential, domain.NewCredentialRow(*created, false))

	row := domain.NewCredentialRow(*created, true)
	return &row, nil
}

// Revoke deletes the credential.
func (s *CredentialService) Revoke(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.hooks.OnDelete(ctx, domain.KindCredential, id)
	return nil
}

// Regenerate replaces both key and secret and shows the new secret.
func (s *CredentialService) Regenerate(ctx context.Context, id string) (*domain.CredentialRow, error) {
	key, secret := newKeyPair()

	updated, err := s.repo.Update(ctx, id, func(c *domain.Credential) {
		c.Key = key
		c.Secret = secret
	})
	if err != nil {
		return nil, err
	}

	s.hooks.OnEdit(ctx, domain.KindCredential, id, domain.NewCredentialRow(*updated, false))

	row := domain.NewCredentialRow(*updated, true)
	return &row, nil
}

func (s *CredentialService) SetActive(ctx context.Context, id string, active bool, revealed bool) (*domain.CredentialRow, error) {
	updated, err := s.repo.Update(ctx, id, func(c *domain.Credential) {
		c.Active = active
	})
	if err != nil {
		return nil, err
	}

	s.hooks.OnEdit(ctx, domain.KindCredential, id, domain.NewCredentialRow(*updated, false))

	row := domain.NewCredentialRow(*updated, revealed)
	return &row, nil
}

func (s *CredentialService) Permissions() []domain.Permission {
	return slices.Clone(domain.Permissions)
}

func newKeyPair() (string, string) {
	k := strings.ReplaceAll(uuid.NewString(), "-", "")
	sec := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "wha_live_" + k[:20], "sk_live_" + sec[:20]
}
