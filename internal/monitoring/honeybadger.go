package monitoring

import (
	"github.com/honeybadger-io/honeybadger-go"

	"coverletter-backend/internal/shared/telemetry"
)

// HoneybadgerNotifier reports errors to Honeybadger.
type HoneybadgerNotifier struct{}

// NewHoneybadger configures the global Honeybadger client and returns a notifier.
func NewHoneybadger(apiKey, env string) *HoneybadgerNotifier {
	honeybadger.Configure(honeybadger.Configuration{
		APIKey: apiKey,
		Env:    env,
	})
	return &HoneybadgerNotifier{}
}

// Notify reports the error message fire-and-forget. Delivery failures are
// logged and swallowed.
func (n *HoneybadgerNotifier) Notify(errorMessage string, err error) {
	payload := any(errorMessage)
	if err != nil {
		payload = err
	}
	if _, reportErr := honeybadger.Notify(payload, honeybadger.Context{"error_message": errorMessage}); reportErr != nil {
		telemetry.Error("monitoring.notify_failed", map[string]any{
			"error_message": errorMessage,
			"error":         reportErr.Error(),
		})
	}
}

var _ Notifier = (*HoneybadgerNotifier)(nil)
