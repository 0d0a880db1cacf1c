package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/onurcolak/gateway-dashboard/internal/hooks"
	"github.com/onurcolak/gateway-dashboard/internal/middlewares"
	"github.com/onurcolak/gateway-dashboard/internal/pairing"
	"github.com/onurcolak/gateway-dashboard/internal/repository"
	"github.com/onurcolak/gateway-dashboard/internal/service"
	"github.com/onurcolak/gateway-dashboard/internal/shell"
	"github.com/onurcolak/gateway-dashboard/internal/viewstate"
	"github.com/onurcolak/gateway-dashboard/pkg/response"
	"github.com/onurcolak/gateway-dashboard/pkg/seed"
	validatorpkg "github.com/onurcolak/gateway-dashboard/pkg/validator"
	"github.com/onurcolak/gateway-dashboard/pkg/webhook"
)

//
// Test fixtures – only for this file.
//

type fixedRandom struct {
	f float64
	n int
}

func (r fixedRandom) Float64() float64 { return r.f }
func (r fixedRandom) IntN(int) int     { return r.n }

type testServer struct {
	e        *echo.Echo
	recorder *hooks.Recorder
	manager  *pairing.Manager
	devices  *service.DeviceService
	views    *viewstate.Controller
}

// newTestServer wires every handler over fresh seed data, the way main does.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	data := seed.Defaults()
	rec := &hooks.Recorder{}
	views := viewstate.NewController(nil)

	deviceRepo := repository.NewDeviceRepository(data.Devices)
	webhookRepo := repository.NewWebhookRepository(data.Webhooks)

	messages := service.NewMessageService(
		repository.NewMessageRepository(data.Messages, data.Conversations),
		repository.NewCatalogRepository(data.Recipients, data.Templates),
		rec,
	)
	devices := service.NewDeviceService(deviceRepo, rec)
	webhooks := service.NewWebhookService(webhookRepo, webhook.NewSimulator(1, func() float64 { return 0 }), rec)
	credentials := service.NewCredentialService(repository.NewCredentialRepository(data.Credentials), rec)
	settings := service.NewSettingsService(repository.NewSettingsRepository(data.SystemParameters, data.Notifications), rec)
	analytics := service.NewAnalyticsService(data.Analytics, rec)
	overview := service.NewOverviewService(deviceRepo, webhookRepo, data.Analytics, data.Activities)

	manager := pairing.NewManager(pairing.Config{Countdown: 2, TickInterval: 5 * time.Millisecond, SuccessProbability: 0.8},
		pairing.RealClock(), fixedRandom{f: 0.1, n: 42})
	manager.OnPaired(func(viewID, deviceID string) {
		if _, err := devices.AddPaired(context.Background(), deviceID); err != nil {
			t.Errorf("AddPaired: %v", err)
		}
		_, _ = views.Apply(context.Background(), viewID, viewstate.ScreenDevices, viewstate.Action{Type: viewstate.ActionComplete})
	})
	t.Cleanup(manager.CloseAll)

	renderer, err := shell.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	e := echo.New()
	e.Validator = validatorpkg.New()
	e.Renderer = renderer

	pages := NewPageHandler()
	for _, s := range shell.Sections() {
		e.GET(s.Path, pages.RenderPage)
	}
	e.GET("/*", pages.Fallback)

	mh := NewMessageHandler(messages, views)
	dh := NewDeviceHandler(devices, views)
	ph := NewPairingHandler(manager, views)
	wh := NewWebhookHandler(webhooks, views)
	ch := NewCredentialHandler(credentials, views)
	sh := NewSettingsHandler(settings)
	ah := NewAnalyticsHandler(analytics, overview)
	vh := NewViewHandler(views)

	v1 := e.Group("/api/v1", middlewares.ViewID())
	v1.GET("/messages", mh.ListMessages)
	v1.POST("/messages", mh.ComposeMessage)
	v1.GET("/messages/:id/conversation", mh.GetConversation)
	v1.POST("/messages/:id/resend", mh.ResendMessage)
	v1.GET("/devices", dh.ListDevices)
	v1.POST("/pairing", ph.OpenSession)
	v1.GET("/pairing/:id", ph.GetSession)
	v1.POST("/pairing/:id/start", ph.StartPairing)
	v1.POST("/pairing/:id/cancel", ph.CancelPairing)
	v1.POST("/webhooks", wh.CreateWebhook)
	v1.PUT("/webhooks/:id", wh.UpdateWebhook)
	v1.POST("/webhooks/test", wh.TestWebhook)
	v1.GET("/credentials", ch.ListCredentials)
	v1.POST("/credentials", ch.CreateCredential)
	v1.POST("/credentials/:id/secret", ch.ToggleSecret)
	v1.PUT("/settings/system", sh.SaveSystemSettings)
	v1.PATCH("/settings/system/fields/:field", sh.UpdateSystemField)
	v1.GET("/analytics", ah.GetReport)
	v1.GET("/analytics/export", ah.ExportReport)
	v1.GET("/overview", ah.GetOverview)
	v1.GET("/navigation", pages.GetNavigation)
	v1.GET("/views/:screen", vh.GetViewState)
	v1.POST("/views/:screen/actions", vh.ApplyAction)
	v1.POST("/views/:screen/sort/:field", vh.ToggleSort)

	return &testServer{e: e, recorder: rec, manager: manager, devices: devices, views: views}
}

func (s *testServer) do(method, path, viewID, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if viewID != "" {
		req.Header.Set(middlewares.ViewIDHeader, viewID)
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to unmarshal %q: %v", rec.Body.String(), err)
	}
	return out
}

type listBody struct {
	Success    bool              `json:"success"`
	Data       []json.RawMessage `json:"data"`
	TotalCount int               `json:"totalCount"`
	NoResults  bool              `json:"noResults"`
	Message    string            `json:"message"`
}

type dataBody[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

//
// Messages
//

func TestListMessages_FailedFilter(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/messages?status=failed", "v1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := decode[listBody](t, rec)
	if body.TotalCount != 1 || len(body.Data) != 1 {
		t.Fatalf("expected one row, got %d", body.TotalCount)
	}

	var row struct {
		Recipient   string `json:"recipient"`
		Type        string `json:"type"`
		StatusBadge struct {
			Label string `json:"label"`
		} `json:"statusBadge"`
	}
	if err := json.Unmarshal(body.Data[0], &row); err != nil {
		t.Fatalf("failed to unmarshal row: %v", err)
	}
	if row.Recipient != "+5555555555" || row.Type != "template" || row.StatusBadge.Label != "Failed" {
		t.Errorf("unexpected row %+v", row)
	}
}

func TestListMessages_ViewKeepsQuery(t *testing.T) {
	s := newTestServer(t)

	s.do(http.MethodGet, "/api/v1/messages?status=failed", "v1", "")

	again := decode[listBody](t, s.do(http.MethodGet, "/api/v1/messages", "v1", ""))
	if again.TotalCount != 1 {
		t.Errorf("expected the view to keep its filter, got %d rows", again.TotalCount)
	}

	other := decode[listBody](t, s.do(http.MethodGet, "/api/v1/messages", "v2", ""))
	if other.TotalCount != 5 {
		t.Errorf("expected another view to see all 5 rows, got %d", other.TotalCount)
	}
}

func TestListMessages_UnknownSortIsEmptyNotError(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/messages?sort=bogus", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := decode[listBody](t, rec)
	if !body.NoResults || len(body.Data) != 0 {
		t.Errorf("expected an empty table, got %+v", body)
	}
	if body.Message != "No messages found" {
		t.Errorf("unexpected empty message %q", body.Message)
	}
}

func TestComposeMessage_BadJSON(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v1/messages", "", `{"mode": "text", "recipientIds":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	resp := decode[response.ErrorResponse](t, rec)
	if resp.Success || resp.Error == "" {
		t.Errorf("unexpected body %+v", resp)
	}
}

func TestComposeMessage_ValidationFailuresRaiseNoCallback(t *testing.T) {
	s := newTestServer(t)

	cases := map[string]string{
		"recipientIds": `{"mode": "text", "text": "hi", "recipientIds": []}`,
		"templateId":   `{"mode": "template", "recipientIds": ["1"]}`,
		"text":         `{"mode": "text", "recipientIds": ["1"]}`,
	}

	for field, body := range cases {
		rec := s.do(http.MethodPost, "/api/v1/messages", "", body)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("%s: expected status 422, got %d", field, rec.Code)
			continue
		}
		resp := decode[validatorpkg.ValidationErrorResponse](t, rec)
		if _, ok := resp.Details[field]; !ok {
			t.Errorf("%s: expected a detail, got %v", field, resp.Details)
		}
	}

	if calls := s.recorder.Named("OnSendMessage"); len(calls) != 0 {
		t.Errorf("expected no send callback, got %d", len(calls))
	}
}

func TestComposeMessage_Template(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v1/messages", "",
		`{"mode": "template", "recipientIds": ["1"], "templateId": "1", "variables": {"name": "Ada"}}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if calls := s.recorder.Named("OnSendMessage"); len(calls) != 1 {
		t.Fatalf("expected one send callback, got %d", len(calls))
	}
}

func TestResendMessage_StatusCodes(t *testing.T) {
	s := newTestServer(t)

	if rec := s.do(http.MethodPost, "/api/v1/messages/1/resend", "", ""); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("delivered message: expected 422, got %d", rec.Code)
	}
	if rec := s.do(http.MethodPost, "/api/v1/messages/99/resend", "", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown message: expected 404, got %d", rec.Code)
	}
	if rec := s.do(http.MethodPost, "/api/v1/messages/4/resend", "", ""); rec.Code != http.StatusOK {
		t.Errorf("failed message: expected 200, got %d", rec.Code)
	}
}

//
// Webhooks and credentials
//

func TestCreateWebhook_UnknownEventType(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v1/webhooks", "",
		`{"url": "https://example.com/hook", "eventTypes": ["message.exploded"]}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}

	resp := decode[validatorpkg.ValidationErrorResponse](t, rec)
	if resp.Details["eventTypes[0]"] == "" {
		t.Errorf("expected eventTypes[0] detail, got %v", resp.Details)
	}
	if len(s.recorder.Named("OnCreate")) != 0 {
		t.Errorf("expected no create callback")
	}
}

func TestCreateWebhook_EmptyURLRaisesNoCallback(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v1/webhooks", "", `{"url": "", "eventTypes": ["message.sent"]}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}

	resp := decode[validatorpkg.ValidationErrorResponse](t, rec)
	if resp.Details["url"] != "url is a required field" {
		t.Errorf("expected a url detail, got %v", resp.Details)
	}
	if len(s.recorder.Named("OnCreate")) != 0 {
		t.Errorf("expected no create callback")
	}
}

func (s *testServer) viewState(t *testing.T, viewID, screen string) viewstate.State {
	t.Helper()
	return decode[dataBody[viewstate.State]](t, s.do(http.MethodGet, "/api/v1/views/"+screen, viewID, "")).Data
}

func (s *testServer) act(t *testing.T, viewID, screen, body string) {
	t.Helper()
	if rec := s.do(http.MethodPost, "/api/v1/views/"+screen+"/actions", viewID, body); rec.Code != http.StatusOK {
		t.Fatalf("%s action %s: expected status 200, got %d", screen, body, rec.Code)
	}
}

func TestSubmit_ReturnsViewToList(t *testing.T) {
	cases := []struct {
		name   string
		screen string
		action string
		method string
		path   string
		body   string
		status int
	}{
		{"edit webhook", "webhooks", `{"type": "edit", "id": "1"}`, http.MethodPut, "/api/v1/webhooks/1",
			`{"url": "https://example.com/edited", "eventTypes": ["message.sent"]}`, http.StatusOK},
		{"add webhook", "webhooks", `{"type": "add"}`, http.MethodPost, "/api/v1/webhooks",
			`{"url": "https://example.com/new", "eventTypes": ["message.sent"]}`, http.StatusCreated},
		{"create credential", "credentials", `{"type": "add"}`, http.MethodPost, "/api/v1/credentials",
			`{"name": "CI", "permissions": ["read:messages"]}`, http.StatusCreated},
		{"compose message", "messages", `{"type": "compose"}`, http.MethodPost, "/api/v1/messages",
			`{"mode": "text", "text": "hi", "recipientIds": ["1"]}`, http.StatusCreated},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t)

			s.act(t, "v1", tc.screen, tc.action)
			if state := s.viewState(t, "v1", tc.screen); state.View == viewstate.ViewList {
				t.Fatalf("expected the form to be open, got %+v", state)
			}

			if rec := s.do(tc.method, tc.path, "v1", tc.body); rec.Code != tc.status {
				t.Fatalf("expected status %d, got %d: %s", tc.status, rec.Code, rec.Body.String())
			}

			state := s.viewState(t, "v1", tc.screen)
			if state.View != viewstate.ViewList || state.SelectedID != "" {
				t.Errorf("expected list with no selection, got %+v", state)
			}
		})
	}
}

func TestSubmit_InvalidFormKeepsView(t *testing.T) {
	s := newTestServer(t)

	s.act(t, "v1", "webhooks", `{"type": "edit", "id": "1"}`)

	if rec := s.do(http.MethodPut, "/api/v1/webhooks/1", "v1", `{"url": "", "eventTypes": []}`); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}

	state := s.viewState(t, "v1", "webhooks")
	if state.View != viewstate.ViewForm || state.SelectedID != "1" {
		t.Errorf("expected the form to stay open on webhook 1, got %+v", state)
	}
}

func TestSubmit_FromListStaysOnList(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v1/webhooks", "v1", `{"url": "https://example.com/new", "eventTypes": ["message.sent"]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
	if state := s.viewState(t, "v1", "webhooks"); state.View != viewstate.ViewList {
		t.Errorf("expected list, got %+v", state)
	}
}

func TestTestWebhook_MissingURL(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v1/webhooks/test", "", `{"url": ""}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}

	resp := decode[validatorpkg.ValidationErrorResponse](t, rec)
	if resp.Details["url"] != "URL is required for testing" {
		t.Errorf("unexpected details %v", resp.Details)
	}
}

func TestToggleSecret_ScopedToView(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v1/credentials/cred-1/secret", "alice", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	row := decode[dataBody[struct {
		Secret        string `json:"secret"`
		SecretVisible bool   `json:"secretVisible"`
	}]](t, rec).Data
	if !row.SecretVisible || row.Secret != "sk_prod_1a2b3c4d5e6f7g8h9i0j" {
		t.Errorf("expected the secret revealed, got %+v", row)
	}

	visible := func(viewID string) bool {
		body := decode[listBody](t, s.do(http.MethodGet, "/api/v1/credentials?sort=name&dir=asc", viewID, ""))
		for _, raw := range body.Data {
			var r struct {
				ID            string `json:"id"`
				SecretVisible bool   `json:"secretVisible"`
			}
			_ = json.Unmarshal(raw, &r)
			if r.ID == "cred-1" {
				return r.SecretVisible
			}
		}
		t.Fatalf("cred-1 not listed")
		return false
	}

	if !visible("alice") {
		t.Errorf("expected cred-1 visible for alice")
	}
	if visible("bob") {
		t.Errorf("expected cred-1 masked for bob")
	}

	if rec := s.do(http.MethodPost, "/api/v1/credentials/nope/secret", "alice", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown credential, got %d", rec.Code)
	}
}

//
// Settings
//

func TestUpdateSystemField(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPatch, "/api/v1/settings/system/fields/rateLimit", "", `{"source": "slider", "value": 57}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	field := decode[dataBody[struct {
		Value float64 `json:"value"`
		Text  string  `json:"text"`
	}]](t, rec).Data
	if field.Value != 61 || field.Text != "61" {
		t.Errorf("expected 61, got %+v", field)
	}

	if rec := s.do(http.MethodPatch, "/api/v1/settings/system/fields/rateLimit", "", `{"source": "text", "text": "lots"}`); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("non-numeric text: expected 422, got %d", rec.Code)
	}
	if rec := s.do(http.MethodPatch, "/api/v1/settings/system/fields/colour", "", `{"source": "slider", "value": 1}`); rec.Code != http.StatusNotFound {
		t.Errorf("unknown field: expected 404, got %d", rec.Code)
	}
}

func TestSaveSystemSettings_Validation(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPut, "/api/v1/settings/system", "", `{
		"messageRetention": 400, "rateLimit": 100, "defaultTemplate": "welcome",
		"mediaStoragePath": "/m", "logLevel": "loud", "backupFrequency": "daily", "maxFileSize": 10}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}

	resp := decode[validatorpkg.ValidationErrorResponse](t, rec)
	for _, field := range []string{"messageRetention", "logLevel"} {
		if resp.Details[field] == "" {
			t.Errorf("expected detail for %s, got %v", field, resp.Details)
		}
	}
	if len(s.recorder.Named("OnSettingsSaved")) != 0 {
		t.Errorf("expected no save callback")
	}
}

//
// Views
//

func TestApplyAction_InvalidKeepsState(t *testing.T) {
	s := newTestServer(t)

	if rec := s.do(http.MethodPost, "/api/v1/views/messages/actions", "v1", `{"type": "back"}`); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}

	rec := s.do(http.MethodPost, "/api/v1/views/messages/actions", "v1", `{"type": "view", "id": "4"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	state := decode[dataBody[viewstate.State]](t, s.do(http.MethodGet, "/api/v1/views/messages", "v1", "")).Data
	if state.View != viewstate.ViewConversation || state.SelectedID != "4" {
		t.Errorf("unexpected state %+v", state)
	}

	if rec := s.do(http.MethodGet, "/api/v1/views/billing", "v1", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown screen: expected 404, got %d", rec.Code)
	}
}

func TestToggleSort_FeedsList(t *testing.T) {
	s := newTestServer(t)

	s.do(http.MethodPost, "/api/v1/views/devices/sort/messageCount", "v1", "")

	body := decode[listBody](t, s.do(http.MethodGet, "/api/v1/devices", "v1", ""))
	var first struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body.Data[0], &first)
	if first.ID != "1" {
		t.Errorf("expected the busiest device first, got %s", first.ID)
	}
}

//
// Pairing
//

func TestPairing_SuccessAddsDeviceAndReturnsToList(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v1/pairing", "v1", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
	snap := decode[dataBody[pairing.Snapshot]](t, rec).Data

	state, _ := s.views.State(context.Background(), "v1", viewstate.ScreenDevices)
	if state.View != viewstate.ViewCreate {
		t.Fatalf("expected the devices view in create, got %s", state.View)
	}

	if rec := s.do(http.MethodPost, "/api/v1/pairing/"+snap.SessionID+"/start", "v1", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec := s.do(http.MethodPost, "/api/v1/pairing/"+snap.SessionID+"/start", "v1", ""); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("second start: expected 422, got %d", rec.Code)
	}

	waitFor(t, func() bool {
		got := decode[dataBody[pairing.Snapshot]](t, s.do(http.MethodGet, "/api/v1/pairing/"+snap.SessionID, "v1", "")).Data
		return got.Status == pairing.StatusSuccess && got.DeviceID == "device_42"
	})

	// The device is added after the session reports success.
	waitFor(t, func() bool {
		_, err := s.devices.Get(context.Background(), "device_42")
		return err == nil
	})

	if calls := s.recorder.Named("OnDevicePaired"); len(calls) != 1 {
		t.Errorf("expected one paired callback, got %d", len(calls))
	}

	waitFor(t, func() bool {
		state, _ := s.views.State(context.Background(), "v1", viewstate.ScreenDevices)
		return state.View == viewstate.ViewList
	})
}

func TestPairing_CancelWhenIdle(t *testing.T) {
	s := newTestServer(t)

	snap := decode[dataBody[pairing.Snapshot]](t, s.do(http.MethodPost, "/api/v1/pairing", "v1", "")).Data

	if rec := s.do(http.MethodPost, "/api/v1/pairing/"+snap.SessionID+"/cancel", "v1", ""); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", rec.Code)
	}
	if rec := s.do(http.MethodGet, "/api/v1/pairing/missing", "v1", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

//
// Analytics, overview and pages
//

func TestGetReport_CustomRangeInvalid(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/analytics?preset=custom&from=2023-06-05&to=2023-06-01", "", "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}
}

func TestExportReport_CSV(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/analytics/export?preset=last7Days", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("unexpected content type %q", ct)
	}
	if !strings.Contains(rec.Header().Get(echo.HeaderContentDisposition), "attachment") {
		t.Errorf("expected an attachment")
	}
	if !strings.HasPrefix(rec.Body.String(), "date,sent,received") {
		t.Errorf("unexpected csv %q", rec.Body.String())
	}
	if len(s.recorder.Named("OnExportReport")) != 1 {
		t.Errorf("expected export callback")
	}
}

func TestGetOverview(t *testing.T) {
	s := newTestServer(t)

	overview := decode[dataBody[service.Overview]](t, s.do(http.MethodGet, "/api/v1/overview", "", "")).Data
	if overview.ActiveDevices != 1 || overview.DeliveryRate != 85 {
		t.Errorf("unexpected overview %+v", overview)
	}
}

func TestPages_KnownAndFallback(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/devices", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `<a href="/devices" class="active" aria-current="page">`) {
		t.Errorf("expected devices to be the active nav item")
	}

	rec = s.do(http.MethodGet, "/billing/invoices", "", "")
	if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != "/" {
		t.Errorf("expected redirect to /, got %d %q", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}
}

func TestGetNavigation_UnknownPathIsDashboard(t *testing.T) {
	s := newTestServer(t)

	page := decode[dataBody[shell.Page]](t, s.do(http.MethodGet, "/api/v1/navigation?path=/nowhere", "", "")).Data
	if page.Section.Path != "/" {
		t.Errorf("expected dashboard, got %s", page.Section.Path)
	}
	if !page.Nav[0].Active {
		t.Errorf("expected Dashboard active")
	}
}
