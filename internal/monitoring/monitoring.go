package monitoring

// Notifier reports application errors to an external alerting service.
// Implementations must never panic or propagate failures to callers.
type Notifier interface {
	Notify(errorMessage string, err error)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

// Notify does nothing.
func (NopNotifier) Notify(errorMessage string, err error) {
	_ = errorMessage
	_ = err
}

var _ Notifier = NopNotifier{}
