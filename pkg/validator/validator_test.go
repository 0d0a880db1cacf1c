package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type webhookSample struct {
	URL         string   `json:"url" validate:"required,url"`
	Description string   `json:"description" validate:"max=10"`
	Events      []string `json:"eventTypes" validate:"min=1"`
}

func TestCustomValidator_WebhookFormErrors(t *testing.T) {
	cv := New()

	err := cv.Validate(webhookSample{Description: "far too long for this"})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ve.Errors["url"] != "url is a required field" {
		t.Errorf("unexpected url message %q", ve.Errors["url"])
	}
	if _, ok := ve.Errors["description"]; !ok {
		t.Error("expected a description error")
	}
	if _, ok := ve.Errors["eventTypes"]; !ok {
		t.Error("expected an eventTypes error")
	}

	err = cv.Validate(webhookSample{URL: "not a url", Events: []string{"message.sent"}})
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ve.Errors["url"] != "url must be a valid URL" {
		t.Errorf("unexpected url message %q", ve.Errors["url"])
	}
}

func TestValidationError_ErrorIsOrdered(t *testing.T) {
	ve := &ValidationError{Errors: map[string]string{"url": "bad", "description": "long", "eventTypes": "empty"}}

	if got := ve.Error(); got != "description: long; eventTypes: empty; url: bad" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestHandleValidationError_Returns422WithDetails(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/webhooks", nil), rec)

	if err := HandleValidationError(c, New().Validate(webhookSample{})); err != nil {
		t.Fatalf("HandleValidationError returned error: %v", err)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}

	var body ValidationErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if body.Success || body.Error != "Validation failed" {
		t.Errorf("unexpected envelope %+v", body)
	}
	if body.Details["url"] == "" {
		t.Errorf("expected a url detail, got %v", body.Details)
	}
}

func TestHandleValidationError_PlainErrorIs400(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/webhooks", nil), rec)

	if err := HandleValidationError(c, errors.New("malformed body")); err != nil {
		t.Fatalf("HandleValidationError returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

type credentialSample struct {
	Name        string   `json:"name" validate:"required"`
	Permissions []string `json:"permissions" validate:"min=1,dive,permission"`
	Events      []string `json:"eventTypes" validate:"omitempty,dive,eventtype"`
}

func TestCustomValidator_CustomRules(t *testing.T) {
	cv := New()

	if err := cv.Validate(credentialSample{Name: "ci", Permissions: []string{"read:messages", "admin"}, Events: []string{"message.sent"}}); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	err := cv.Validate(credentialSample{Name: "ci", Permissions: []string{"root"}, Events: []string{"message.bounced"}})
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}

	if msg := ve.Errors["permissions[0]"]; msg != "permissions[0] must be a known permission" {
		t.Errorf("unexpected permission message %q", msg)
	}
	if msg := ve.Errors["eventTypes[0]"]; msg != "eventTypes[0] must be a known event type" {
		t.Errorf("unexpected event type message %q", msg)
	}
}

func TestHandleValidationError_UnwrapsWrappedErrors(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/test", nil), rec)

	err := fmt.Errorf("compose: %w", FieldError("recipients", "unknown recipient 9"))
	if err := HandleValidationError(c, err); err != nil {
		t.Fatalf("HandleValidationError returned error: %v", err)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}
}
