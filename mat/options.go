package mat

import (
	"log/slog"

	"github.com/ajroetker/go-matpool/num"
)

type config struct {
	numWorkers int
	logger     *slog.Logger
}

// Option configures Multiply.
type Option func(*config)

// WithNumWorkers sets the pool size used by Multiply. Values <= 0 select
// num.DefaultWorkers. MultiplyWithPool ignores it.
func WithNumWorkers(n int) Option {
	return func(c *config) {
		c.numWorkers = n
	}
}

// WithLogger sets the logger for dispatch and task failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts []Option) config {
	c := config{logger: slog.Default()}
	for _, opt := range opts {
		opt(&c)
	}
	if c.numWorkers <= 0 {
		c.numWorkers = num.DefaultWorkers()
	}
	return c
}
