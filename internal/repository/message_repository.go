package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
)

// MessageRepository holds the message log in memory.
type MessageRepository struct {
	mu            sync.RWMutex
	messages      []domain.Message
	conversations []domain.Conversation
}

func NewMessageRepository(messages []domain.Message, conversations []domain.Conversation) *MessageRepository {
	return &MessageRepository{
		messages:      slices.Clone(messages),
		conversations: cloneConversations(conversations),
	}
}

func (r *MessageRepository) List(ctx context.Context) ([]domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.messages), nil
}

func (r *MessageRepository) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.messages {
		if m.ID == id {
			found := m
			return &found, nil
		}
	}

	return nil, fmt.Errorf("message %s: %w", id, domain.ErrNotFound)
}

// ConversationWith returns the thread with the given contact phone. A contact
// without history gets an empty thread.
func (r *MessageRepository) ConversationWith(ctx context.Context, phone string) (*domain.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.conversations {
		if c.ContactPhone == phone {
			found := c
			found.Messages = slices.Clone(c.Messages)
			return &found, nil
		}
	}

	return &domain.Conversation{
		ContactName:  phone,
		ContactPhone: phone,
		Messages:     []domain.ConversationMessage{},
	}, nil
}

func (r *MessageRepository) Count(ctx context.Context) (map[domain.MessageStatus]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[domain.MessageStatus]int)
	for _, m := range r.messages {
		counts[m.Status]++
	}

	return counts, nil
}

func cloneConversations(in []domain.Conversation) []domain.Conversation {
	out := make([]domain.Conversation, len(in))
	for i, c := range in {
		out[i] = c
		out[i].Messages = slices.Clone(c.Messages)
	}
	return out
}
