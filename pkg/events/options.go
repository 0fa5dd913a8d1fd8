package events

// HubOption configures a Hub.
type HubOption func(*hubConfig)

type hubConfig struct {
	bufferSize int
}

// WithBufferSize sets the default per-subscription buffer size.
// Values below 1 are ignored.
func WithBufferSize(n int) HubOption {
	return func(c *hubConfig) {
		if n > 0 {
			c.bufferSize = n
		}
	}
}

// SubscribeOption configures a single subscription.
type SubscribeOption[T any] func(*subscribeConfig[T])

type subscribeConfig[T any] struct {
	bufferSize int
	filter     func(T) bool
}

// WithFilter delivers only values for which keep returns true.
func WithFilter[T any](keep func(T) bool) SubscribeOption[T] {
	return func(c *subscribeConfig[T]) {
		c.filter = keep
	}
}

// WithSubscriptionBuffer overrides the hub's buffer size for one subscription.
func WithSubscriptionBuffer[T any](n int) SubscribeOption[T] {
	return func(c *subscribeConfig[T]) {
		if n > 0 {
			c.bufferSize = n
		}
	}
}
