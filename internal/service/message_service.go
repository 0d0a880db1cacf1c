package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
	"github.com/onurcolak/gateway-dashboard/internal/hooks"
	"github.com/onurcolak/gateway-dashboard/internal/listview"
	"github.com/onurcolak/gateway-dashboard/pkg/logger"
	"github.com/onurcolak/gateway-dashboard/pkg/validator"
)

// Small internal interfaces so we can test without the seeded repositories.
type messageRepository interface {
	List(ctx context.Context) ([]domain.Message, error)
	GetByID(ctx context.Context, id string) (*domain.Message, error)
	ConversationWith(ctx context.Context, phone string) (*domain.Conversation, error)
}

type catalogRepository interface {
	Recipients(ctx context.Context) ([]domain.Recipient, error)
	Templates(ctx context.Context) ([]domain.Template, error)
	TemplateByID(ctx context.Context, id string) (*domain.Template, error)
	RecipientsByID(ctx context.Context, ids []string) ([]domain.Recipient, []string)
}

type MessageService struct {
	repo    messageRepository
	catalog catalogRepository
	hooks   hooks.Hooks
}

func NewMessageService(repo messageRepository, catalog catalogRepository, h hooks.Hooks) *MessageService {
	return &MessageService{repo: repo, catalog: catalog, hooks: h}
}

// ComposeInput is a composer submission after struct validation.
type ComposeInput struct {
	Mode         string
	Text         string
	RecipientIDs []string
	TemplateID   string
	Variables    map[string]string
	Attachments  []string
}

const (
	ComposeModeText     = "text"
	ComposeModeTemplate = "template"
)

func (s *MessageService) List(ctx context.Context, q listview.Query) (listview.Result[domain.MessageRow], error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return listview.Result[domain.MessageRow]{}, fmt.Errorf("failed to list messages: %w", err)
	}

	result := listview.Apply(messages, listview.Messages, q)
	return listview.Map(result, domain.NewMessageRow), nil
}

func (s *MessageService) Get(ctx context.Context, id string) (*domain.MessageRow, error) {
	msg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	row := domain.NewMessageRow(*msg)
	return &row, nil
}

// Conversation returns the thread a message belongs to. The recipient is
// tried first, then the sender; an unknown contact gets an empty thread.
func (s *MessageService) Conversation(ctx context.Context, messageID string) (*domain.Conversation, error) {
	msg, err := s.repo.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	conv, err := s.repo.ConversationWith(ctx, msg.Recipient)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	if len(conv.Messages) > 0 {
		return conv, nil
	}

	bySender, err := s.repo.ConversationWith(ctx, msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	if len(bySender.Messages) > 0 {
		return bySender, nil
	}

	return conv, nil
}

// Reply sends text into the thread of a message.
func (s *MessageService) Reply(ctx context.Context, messageID, text string) (*domain.OutgoingMessage, error) {
	conv, err := s.Conversation(ctx, messageID)
	if err != nil {
		return nil, err
	}

	out := domain.OutgoingMessage{
		Text:        text,
		Attachments: []string{},
		Recipients:  []domain.Recipient{{Name: conv.ContactName, Phone: conv.ContactPhone}},
	}
	s.hooks.OnSendMessage(ctx, out)

	return &out, nil
}

// Resend is only offered for failed messages.
func (s *MessageService) Resend(ctx context.Context, id string) error {
	msg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if msg.Status != domain.MessageStatusFailed {
		return fmt.Errorf("message %s is %s, only failed messages can be resent: %w", id, msg.Status, domain.ErrInvalidState)
	}

	s.hooks.OnResendMessage(ctx, id)
	return nil
}

func (s *MessageService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	s.hooks.OnDeleteMessage(ctx, id)
	return nil
}

func (s *MessageService) Recipients(ctx context.Context) ([]domain.Recipient, error) {
	return s.catalog.Recipients(ctx)
}

func (s *MessageService) Templates(ctx context.Context) ([]domain.Template, error) {
	return s.catalog.Templates(ctx)
}

// Preview renders a template with the given variable values.
func (s *MessageService) Preview(ctx context.Context, templateID string, values map[string]string) (string, error) {
	tmpl, err := s.catalog.TemplateByID(ctx, templateID)
	if err != nil {
		return "", err
	}
	return RenderTemplate(*tmpl, normalizeVariables(*tmpl, values)), nil
}

// Compose builds the outgoing message and hands it to the send callback.
func (s *MessageService) Compose(ctx context.Context, in ComposeInput) (*domain.OutgoingMessage, error) {
	recipients, missing := s.catalog.RecipientsByID(ctx, in.RecipientIDs)
	if len(missing) > 0 {
		return nil, validator.FieldError("recipientIds", "unknown recipients: "+strings.Join(missing, ", "))
	}

	out := domain.OutgoingMessage{
		Text:        in.Text,
		Attachments: slices.Clone(in.Attachments),
		Recipients:  recipients,
	}
	if out.Attachments == nil {
		out.Attachments = []string{}
	}

	if in.Mode == ComposeModeTemplate {
		tmpl, err := s.catalog.TemplateByID(ctx, in.TemplateID)
		if err != nil {
			return nil, validator.FieldError("templateId", "unknown template "+in.TemplateID)
		}

		vars := normalizeVariables(*tmpl, in.Variables)
		out.Template = tmpl
		if len(vars) > 0 {
			out.TemplateVariables = vars
		}
		out.Preview = RenderTemplate(*tmpl, vars)
	}

	s.hooks.OnSendMessage(ctx, out)
	logger.Infof("Composed message for %d recipients", len(recipients))

	return &out, nil
}

// normalizeVariables keeps exactly the template's variables, filling the
// missing ones with "".
func normalizeVariables(tmpl domain.Template, values map[string]string) map[string]string {
	vars := make(map[string]string, len(tmpl.Variables))
	for _, name := range tmpl.Variables {
		vars[name] = values[name]
	}
	return vars
}

// RenderTemplate replaces the first {{name}} of each variable. A variable with
// an empty value keeps its placeholder.
func RenderTemplate(tmpl domain.Template, vars map[string]string) string {
	out := tmpl.Content
	for _, name := range tmpl.Variables {
		value := vars[name]
		if value == "" {
			continue
		}
		out = strings.Replace(out, "{{"+name+"}}", value, 1)
	}
	return out
}
