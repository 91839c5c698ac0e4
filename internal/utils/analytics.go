// analytics.go wraps the PostHog client so callers never have to care whether
// analytics is configured. An empty API key yields a disabled client that
// silently drops events.
package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// AnalyticsClient delivers API usage events to PostHog.
type AnalyticsClient struct {
	client posthog.Client
	logger *slog.Logger
}

// NewAnalyticsClient connects to PostHog with the given project API key.
func NewAnalyticsClient(apiKey string, logger *slog.Logger) *AnalyticsClient {
	if apiKey == "" {
		logger.Warn("PostHog API key not set, API event tracking disabled.")
		return &AnalyticsClient{}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: "https://eu.i.posthog.com"})
	if err != nil {
		logger.Error("Failed to initialize PostHog client", slog.String("error", err.Error()))
		return &AnalyticsClient{}
	}
	logger.Info("PostHog API event tracking enabled.")
	return &AnalyticsClient{client: client, logger: logger}
}

// Enabled reports whether events will actually be delivered.
func (a *AnalyticsClient) Enabled() bool {
	return a != nil && a.client != nil
}

// Capture enqueues an event for asynchronous delivery. Events are dropped
// when the client is disabled.
func (a *AnalyticsClient) Capture(distinctID string, event string, properties map[string]any) {
	if !a.Enabled() {
		return
	}
	err := a.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil {
		a.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes pending events.
func (a *AnalyticsClient) Close() {
	if !a.Enabled() {
		return
	}
	if err := a.client.Close(); err != nil {
		a.logger.Warn("Failed to close analytics client", slog.String("error", err.Error()))
	}
}
