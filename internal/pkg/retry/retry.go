package retry

import (
	"time"

	"github.com/avast/retry-go/v4"
)

// RetryConfig describes a bounded retry loop with fixed delay. The defaults
// match the Gemini file-activation poll: one attempt every 2 seconds within
// a 5 minute budget.
type RetryConfig struct {
	Attempts uint          `env:"ATTEMPTS" envDefault:"150"`
	Delay    time.Duration `env:"DELAY" envDefault:"2s"`
	MaxDelay time.Duration `env:"MAX_DELAY" envDefault:"2s"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"300s"`
}

func (rc *RetryConfig) ToRetryOptions() []retry.Option {
	return []retry.Option{
		retry.Attempts(rc.Attempts),
		retry.Delay(rc.Delay),
		retry.MaxDelay(rc.MaxDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	}
}
