package webhook

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/onurcolak/gateway-dashboard/environments"
	"github.com/onurcolak/gateway-dashboard/internal/domain"
	"github.com/onurcolak/gateway-dashboard/pkg/logger"
)

const (
	ModeSimulated = "simulated"
	ModeLive      = "live"

	successMessage = "Webhook test successful! The endpoint responded with 200 OK."
	failureMessage = "Webhook test failed. The endpoint could not be reached or returned an error."
)

// Tester probes a webhook endpoint for the "Test webhook" button.
type Tester interface {
	Test(ctx context.Context, url string) domain.WebhookTestResult
}

// New returns the tester selected by cfg.Mode. Anything but "live" simulates.
func New(cfg environments.WebhookTestConfig, random func() float64) Tester {
	if cfg.Mode == ModeLive {
		return NewWebhookClient(cfg)
	}
	return NewSimulator(cfg.SuccessProbability, random)
}

// Client sends one real test event. It never retries: a test reports what
// the endpoint did on the first attempt.
type Client struct {
	httpClient *resty.Client
}

type testEvent struct {
	Event     string    `json:"event"`
	Timestamp time.Time `json:"timestamp"`
}

func NewWebhookClient(cfg environments.WebhookTestConfig) *Client {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "gateway-dashboard-webhook-test")

	return &Client{httpClient: client}
}

func (c *Client) Test(ctx context.Context, url string) domain.WebhookTestResult {
	startTime := time.Now()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(testEvent{Event: "webhook.test", Timestamp: startTime.UTC()}).
		Post(url)

	duration := time.Since(startTime)

	if err != nil {
		logger.Warnf("Webhook test to %s failed after %v: %v", url, duration, err)
		return domain.WebhookTestResult{Success: false, Message: failureMessage}
	}

	logger.Infof("Webhook test to %s completed in %v (status: %d)", url, duration, resp.StatusCode())

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return domain.WebhookTestResult{
			Success:    false,
			Message:    fmt.Sprintf("Webhook test failed. The endpoint returned %d.", resp.StatusCode()),
			StatusCode: resp.StatusCode(),
		}
	}

	return domain.WebhookTestResult{
		Success:    true,
		Message:    fmt.Sprintf("Webhook test successful! The endpoint responded with %s.", resp.Status()),
		StatusCode: resp.StatusCode(),
	}
}

// Simulator pretends to probe the endpoint and succeeds with a fixed
// probability.
type Simulator struct {
	probability float64
	random      func() float64
}

func NewSimulator(probability float64, random func() float64) *Simulator {
	return &Simulator{probability: probability, random: random}
}

func (s *Simulator) Test(ctx context.Context, url string) domain.WebhookTestResult {
	if s.random() < s.probability {
		logger.Debugf("Simulated webhook test to %s succeeded", url)
		return domain.WebhookTestResult{Success: true, Message: successMessage, StatusCode: http.StatusOK}
	}

	logger.Debugf("Simulated webhook test to %s failed", url)
	return domain.WebhookTestResult{Success: false, Message: failureMessage}
}
