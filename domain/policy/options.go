package policy

import "log/slog"

// evaluatorConfig holds configuration shared by the signature evaluators.
type evaluatorConfig struct {
	logger *slog.Logger // Receives debug records for computed decisions
	source string       // Name of the definition source, for error messages
}

func defaultEvaluatorConfig() evaluatorConfig {
	return evaluatorConfig{
		logger: slog.Default(),
	}
}

// Option configures an evaluator.
type Option func(*evaluatorConfig)

// WithLogger sets the logger used for decision tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *evaluatorConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSourceName names the definition source in parse errors.
func WithSourceName(name string) Option {
	return func(c *evaluatorConfig) {
		c.source = name
	}
}

func newEvaluatorConfig(opts []Option) evaluatorConfig {
	cfg := defaultEvaluatorConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
