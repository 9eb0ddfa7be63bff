// posthog_client.go provides a wrapper around the posthog.Client to make it
// easier to use and handle when it is not initialized.
package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// PosthogClientWrapper wraps a posthog.Client that may be absent.
type PosthogClientWrapper struct {
	posthogClient posthog.Client
	logger        *slog.Logger
}

// InitializePosthogClient creates the wrapper; an empty API key yields a
// no-op wrapper.
func InitializePosthogClient(apiKey string, logger *slog.Logger) *PosthogClientWrapper {
	if apiKey == "" {
		logger.Warn("Posthog API key is empty, not initializing posthog client.")
		return &PosthogClientWrapper{}
	}
	wrapper := PosthogClientWrapper{}
	wrapper.posthogClient, _ = posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: "https://eu.i.posthog.com"})
	wrapper.logger = logger
	return &wrapper
}

// IsInitialized reports whether a real client is present.
func (w *PosthogClientWrapper) IsInitialized() bool {
	return w.posthogClient != nil
}

// Enqueue sends a capture event if the client is initialized.
func (w *PosthogClientWrapper) Enqueue(distinctID string, event string, properties map[string]any) {
	if w.posthogClient == nil {
		return
	}
	if w.logger != nil {
		w.logger.Debug("Enqueueing event", slog.String("distinct_id", distinctID), slog.String("event", event))
	}
	w.posthogClient.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
}

// Close flushes and shuts down the underlying client.
func (w *PosthogClientWrapper) Close() {
	if w.posthogClient == nil {
		return
	}
	w.posthogClient.Close()
}
