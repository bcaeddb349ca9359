package labgroups

// Option configures an Allocator with optional dependencies.
type Option func(*allocatorOptions)

// allocatorOptions holds optional Allocator configuration.
type allocatorOptions struct {
	strategy AssignmentStrategy
	metrics  MetricsCollector
	logger   Logger
}

// WithStrategy sets a custom assignment strategy.
//
// Parameters:
//   - strategy: AssignmentStrategy implementation
//
// Returns:
//   - Option: Functional option for NewAllocator
//
// Example:
//
//	alloc, err := labgroups.NewAllocator(&cfg, src, ovr, labgroups.WithStrategy(strategy.NewGreedy()))
func WithStrategy(strategy AssignmentStrategy) Option {
	return func(o *allocatorOptions) {
		o.strategy = strategy
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewAllocator
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "labgroups")
//	alloc, err := labgroups.NewAllocator(&cfg, src, ovr, labgroups.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *allocatorOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewAllocator
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	alloc, err := labgroups.NewAllocator(&cfg, src, ovr, labgroups.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *allocatorOptions) {
		o.logger = logger
	}
}
