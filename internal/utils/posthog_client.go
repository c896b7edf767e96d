package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// AnalyticsClient forwards ledger activity to PostHog. The zero value is a
// no-op so callers never need to check whether analytics is configured.
type AnalyticsClient struct {
	client posthog.Client
	logger *slog.Logger
}

// NewAnalyticsClient returns a disabled client when apiKey is empty or the
// PostHog client cannot be built.
func NewAnalyticsClient(apiKey, endpoint string, logger *slog.Logger) *AnalyticsClient {
	if apiKey == "" {
		logger.Warn("POSTHOG_API_KEY not set, analytics disabled")
		return &AnalyticsClient{}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Error("Failed to create posthog client, analytics disabled", slog.String("error", err.Error()))
		return &AnalyticsClient{}
	}
	logger.Info("Analytics enabled", slog.String("endpoint", endpoint))
	return &AnalyticsClient{client: client, logger: logger}
}

func (a *AnalyticsClient) Enabled() bool {
	return a != nil && a.client != nil
}

// Capture enqueues event for actor. Errors are logged, never returned.
func (a *AnalyticsClient) Capture(actor, event string, props posthog.Properties) {
	if !a.Enabled() {
		return
	}
	err := a.client.Enqueue(posthog.Capture{DistinctId: actor, Event: event, Properties: props})
	if err != nil && a.logger != nil {
		a.logger.Warn("Dropping analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes queued events.
func (a *AnalyticsClient) Close() {
	if !a.Enabled() {
		return
	}
	if err := a.client.Close(); err != nil && a.logger != nil {
		a.logger.Warn("Error flushing analytics", slog.String("error", err.Error()))
	}
}
