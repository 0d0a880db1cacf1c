package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
)

type CredentialRepository struct {
	mu          sync.RWMutex
	credentials []domain.Credential
}

func NewCredentialRepository(credentials []domain.Credential) *CredentialRepository {
	cloned := make([]domain.Credential, len(credentials))
	for i, c := range credentials {
		c.Permissions = slices.Clone(c.Permissions)
		cloned[i] = c
	}
	return &CredentialRepository{credentials: cloned}
}

func (r *CredentialRepository) List(ctx context.Context) ([]domain.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Credential, len(r.credentials))
	for i, c := range r.credentials {
		c.Permissions = slices.Clone(c.Permissions)
		out[i] = c
	}
	return out, nil
}

func (r *CredentialRepository) GetByID(ctx context.Context, id string) (*domain.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("credential %s: %w", id, domain.ErrNotFound)
	}

	found := r.credentials[idx]
	found.Permissions = slices.Clone(found.Permissions)
	return &found, nil
}

func (r *CredentialRepository) Create(ctx context.Context, credential domain.Credential) (*domain.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(credential.ID) >= 0 {
		return nil, fmt.Errorf("credential %s already exists", credential.ID)
	}

	stored := credential
	stored.Permissions = slices.Clone(credential.Permissions)
	r.credentials = append(r.credentials, stored)
	return &credential, nil
}

func (r *CredentialRepository) Update(ctx context.Context, id string, fn func(*domain.Credential)) (*domain.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("credential %s: %w", id, domain.ErrNotFound)
	}

	fn(&r.credentials[idx])
	updated := r.credentials[idx]
	updated.Permissions = slices.Clone(updated.Permissions)
	return &updated, nil
}

func (r *CredentialRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("credential %s: %w", id, domain.ErrNotFound)
	}

	r.credentials = slices.Delete(r.credentials, idx, idx+1)
	return nil
}

func (r *CredentialRepository) indexOf(id string) int {
	return slices.IndexFunc(r.credentials, func(c domain.Credential) bool { return c.ID == id })
}
