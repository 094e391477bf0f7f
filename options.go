package searchvalidator

import "github.com/searchql/validator/pkg/logger"

// DefaultSortValues is the fixed allowed set for the sort directive,
// in the order diagnostics list them.
var DefaultSortValues = []string{
	"comments-asc", "comments-desc",
	"created-asc", "created-desc",
	"interactions-asc", "interactions-desc",
	"reactions-asc", "reactions-desc",
	"updated-asc", "updated-desc",
}

// Option configures a validator.
type Option func(*Options)

// Options holds all configuration for a validator.
type Options struct {
	// MaxDiagnostics truncates the returned batch after this many
	// findings (0 = unlimited; the walk still visits every node).
	MaxDiagnostics int

	// SortValues is the allowed sort criteria set.
	SortValues []string

	// CollectMetrics enables recording into the Metrics instance.
	CollectMetrics bool

	// Logger receives debug output from the engine.
	Logger *logger.Logger
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		MaxDiagnostics: 0,
		SortValues:     DefaultSortValues,
		CollectMetrics: true,
		Logger:         logger.Default(),
	}
}

// WithMaxDiagnostics limits the size of the returned batch.
func WithMaxDiagnostics(n int) Option {
	return func(o *Options) { o.MaxDiagnostics = n }
}

// WithSortValues overrides the allowed sort criteria set.
func WithSortValues(values []string) Option {
	return func(o *Options) { o.SortValues = values }
}

// WithMetrics enables or disables metric collection.
func WithMetrics(enable bool) Option {
	return func(o *Options) { o.CollectMetrics = enable }
}

// WithLogger sets the logger the engine writes debug output to.
func WithLogger(l *logger.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
