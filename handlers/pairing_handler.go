package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
	"github.com/onurcolak/gateway-dashboard/internal/middlewares"
	"github.com/onurcolak/gateway-dashboard/internal/pairing"
	"github.com/onurcolak/gateway-dashboard/internal/viewstate"
	"github.com/onurcolak/gateway-dashboard/pkg/logger"
	"github.com/onurcolak/gateway-dashboard/pkg/response"
)

const streamWriteTimeout = 5 * time.Second

// PairingHandler drives the QR pairing widget of the devices screen.
type PairingHandler struct {
	manager  *pairing.Manager
	views    *viewstate.Controller
	upgrader websocket.Upgrader
}

func NewPairingHandler(manager *pairing.Manager, views *viewstate.Controller) *PairingHandler {
	return &PairingHandler{
		manager: manager,
		views:   views,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// OpenSession godoc
// @Summary Open a pairing session
// @Description Shows the pairing widget for the view. The session starts idle.
// @Tags pairing
// @Produce json
// @Param x-view-id header string false "Dashboard view id"
// @Success 201 {object} response.SuccessResponse
// @Router /api/v1/pairing [post]
func (h *PairingHandler) OpenSession(c echo.Context) error {
	viewID := middlewares.GetViewID(c)
	session := h.manager.Open(viewID)

	if h.views != nil && viewID != "" {
		_, err := h.views.Apply(c.Request().Context(), viewID, viewstate.ScreenDevices, viewstate.Action{Type: viewstate.ActionAdd})
		if err != nil && !errors.Is(err, domain.ErrInvalidTransition) {
			return respondError(c, err)
		}
	}

	return response.Created(c, "Pairing session opened", session.Snapshot())
}

// GetSession godoc
// @Summary Get a pairing session
// @Tags pairing
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/pairing/{id} [get]
func (h *PairingHandler) GetSession(c echo.Context) error {
	session, err := h.manager.Get(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Ok(c, session.Snapshot())
}

// StartPairing godoc
// @Summary Start scanning
// @Description Starts the countdown. Only an idle session can start.
// @Tags pairing
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /api/v1/pairing/{id}/start [post]
func (h *PairingHandler) StartPairing(c echo.Context) error {
	return h.act(c, (*pairing.Session).Start)
}

// CancelPairing godoc
// @Summary Cancel scanning
// @Tags pairing
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /api/v1/pairing/{id}/cancel [post]
func (h *PairingHandler) CancelPairing(c echo.Context) error {
	return h.act(c, (*pairing.Session).Cancel)
}

// ResetPairing godoc
// @Summary Reset a finished session
// @Description Returns a session in success or error back to idle.
// @Tags pairing
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /api/v1/pairing/{id}/reset [post]
func (h *PairingHandler) ResetPairing(c echo.Context) error {
	return h.act(c, (*pairing.Session).Reset)
}

// CloseSession godoc
// @Summary Close a pairing session
// @Description Stops the countdown and hides the widget.
// @Tags pairing
// @Produce json
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/pairing/{id} [delete]
func (h *PairingHandler) CloseSession(c echo.Context) error {
	if err := h.manager.Close(c.Param("id")); err != nil {
		return respondError(c, err)
	}

	viewID := middlewares.GetViewID(c)
	if h.views != nil && viewID != "" {
		_, err := h.views.Apply(c.Request().Context(), viewID, viewstate.ScreenDevices, viewstate.Action{Type: viewstate.ActionCancel})
		if err != nil && !errors.Is(err, domain.ErrInvalidTransition) {
			return respondError(c, err)
		}
	}

	return response.NoContent(c)
}

// StreamSession godoc
// @Summary Stream pairing snapshots
// @Description Upgrades to a websocket and pushes a snapshot on every status or countdown change.
// @Tags pairing
// @Param id path string true "Session ID"
// @Success 101
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/pairing/{id}/ws [get]
func (h *PairingHandler) StreamSession(c echo.Context) error {
	session, err := h.manager.Get(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Warnf("Pairing stream upgrade failed: %v", err)
		return nil
	}
	defer conn.Close()

	updates, unsubscribe := session.Subscribe()
	defer unsubscribe()

	// The reader only notices the client going away.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case snap, ok := <-updates:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"),
					time.Now().Add(streamWriteTimeout))
				return nil
			}
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
			if err := conn.WriteJSON(snap); err != nil {
				logger.Debugf("Pairing stream for %s ended: %v", session.ID(), err)
				return nil
			}
		case <-gone:
			return nil
		}
	}
}

func (h *PairingHandler) act(c echo.Context, fn func(*pairing.Session) (pairing.Snapshot, error)) error {
	session, err := h.manager.Get(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	snap, err := fn(session)
	if err != nil {
		return respondError(c, err)
	}
	return response.Ok(c, snap)
}
