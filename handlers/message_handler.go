package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/onurcolak/gateway-dashboard/internal/service"
	"github.com/onurcolak/gateway-dashboard/internal/viewstate"
	"github.com/onurcolak/gateway-dashboard/pkg/response"
)

type MessageHandler struct {
	service *service.MessageService
	views   *viewstate.Controller
}

func NewMessageHandler(service *service.MessageService, views *viewstate.Controller) *MessageHandler {
	return &MessageHandler{service: service, views: views}
}

type ComposeMessageRequest struct {
	Mode         string            `json:"mode" validate:"required,oneof=text template"`
	Text         string            `json:"text" validate:"required_if=Mode text,max=4096"`
	RecipientIDs []string          `json:"recipientIds" validate:"min=1,dive,required"`
	TemplateID   string            `json:"templateId" validate:"required_if=Mode template"`
	Variables    map[string]string `json:"variables"`
	Attachments  []string          `json:"attachments" validate:"dive,required"`
}

type ReplyRequest struct {
	Text string `json:"text" validate:"required,max=4096"`
}

type PreviewRequest struct {
	TemplateID string            `json:"templateId" validate:"required"`
	Variables  map[string]string `json:"variables"`
}

// ListMessages godoc
// @Summary List messages
// @Description Filters and sorts the message table. Without any query parameter the view's last query is reused.
// @Tags messages
// @Produce json
// @Param x-view-id header string false "Dashboard view id"
// @Param search query string false "Matches sender, recipient and preview"
// @Param status query string false "all, delivered, read, failed, pending"
// @Param type query string false "all, text, image, document, template"
// @Param sort query string false "timestamp, status, type"
// @Param dir query string false "asc or desc"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} response.ListResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/messages [get]
func (h *MessageHandler) ListMessages(c echo.Context) error {
	q, err := listQuery(c, h.views, viewstate.ScreenMessages, "status", "type")
	if err != nil {
		return respondError(c, err)
	}

	result, err := h.service.List(c.Request().Context(), q)
	if err != nil {
		return response.InternalServerError(c, err)
	}

	return writeListing(c, result)
}

// GetMessage godoc
// @Summary Get a message
// @Tags messages
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/messages/{id} [get]
func (h *MessageHandler) GetMessage(c echo.Context) error {
	row, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Ok(c, row)
}

// GetConversation godoc
// @Summary Get the conversation of a message
// @Description Returns the thread with the message's recipient, or its sender when the recipient has none.
// @Tags messages
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/messages/{id}/conversation [get]
func (h *MessageHandler) GetConversation(c echo.Context) error {
	conv, err := h.service.Conversation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Ok(c, conv)
}

// Reply godoc
// @Summary Reply in a conversation
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Param request body ReplyRequest true "Reply text"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} validator.ValidationErrorResponse
// @Router /api/v1/messages/{id}/reply [post]
func (h *MessageHandler) Reply(c echo.Context) error {
	var req ReplyRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.service.Reply(c.Request().Context(), c.Param("id"), req.Text)
	if err != nil {
		return respondError(c, err)
	}
	return response.OkWithMessage(c, "Reply sent", out)
}

// ResendMessage godoc
// @Summary Resend a failed message
// @Tags messages
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /api/v1/messages/{id}/resend [post]
func (h *MessageHandler) ResendMessage(c echo.Context) error {
	id := c.Param("id")
	if err := h.service.Resend(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return response.OkWithMessage(c, "Message queued for resend", map[string]any{"id": id})
}

// DeleteMessage godoc
// @Summary Delete a message
// @Description Asks the host to delete the message. The table changes on the next refresh.
// @Tags messages
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/messages/{id} [delete]
func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return response.OkWithMessage(c, "Message deletion requested", map[string]any{"id": id})
}

// ComposeMessage godoc
// @Summary Compose and send a message
// @Tags messages
// @Accept json
// @Produce json
// @Param request body ComposeMessageRequest true "Composer form"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 422 {object} validator.ValidationErrorResponse
// @Router /api/v1/messages [post]
func (h *MessageHandler) ComposeMessage(c echo.Context) error {
	var req ComposeMessageRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.service.Compose(c.Request().Context(), service.ComposeInput{
		Mode:         req.Mode,
		Text:         req.Text,
		RecipientIDs: req.RecipientIDs,
		TemplateID:   req.TemplateID,
		Variables:    req.Variables,
		Attachments:  req.Attachments,
	})
	if err != nil {
		return respondError(c, err)
	}

	completeView(c, h.views, viewstate.ScreenMessages)

	return response.Created(c, "Message sent", out)
}

// PreviewTemplate godoc
// @Summary Render a template preview
// @Tags messages
// @Accept json
// @Produce json
// @Param request body PreviewRequest true "Template and variable values"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/templates/preview [post]
func (h *MessageHandler) PreviewTemplate(c echo.Context) error {
	var req PreviewRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	preview, err := h.service.Preview(c.Request().Context(), req.TemplateID, req.Variables)
	if err != nil {
		return respondError(c, err)
	}
	return response.Ok(c, map[string]any{"preview": preview})
}

// ListTemplates godoc
// @Summary List message templates
// @Tags messages
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /api/v1/templates [get]
func (h *MessageHandler) ListTemplates(c echo.Context) error {
	templates, err := h.service.Templates(c.Request().Context())
	if err != nil {
		return response.InternalServerError(c, err)
	}
	return response.Ok(c, templates)
}

// ListRecipients godoc
// @Summary List recipients
// @Tags messages
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /api/v1/recipients [get]
func (h *MessageHandler) ListRecipients(c echo.Context) error {
	recipients, err := h.service.Recipients(c.Request().Context())
	if err != nil {
		return response.InternalServerError(c, err)
	}
	return response.Ok(c, recipients)
}
