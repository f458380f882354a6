package tabgroup

// Defaults for the pipeline's configuration surface.
const (
	DefaultMinClusterSize      = 2
	DefaultMinSamples          = 1
	DefaultMaxClusterSize      = 10
	DefaultSimilarityThreshold = 0.6
	DefaultSelectionEpsilon    = 0.05
	DefaultSeed                = 42
)

// defaultFallbackCandidates are the group counts tried, in order, when
// density clustering finds nothing.
var defaultFallbackCandidates = []int{2, 3, 4, 5}

type options struct {
	minClusterSize      int
	minSamples          int
	maxClusterSize      int
	similarityThreshold float32
	selectionEpsilon    float64
	seed                int64
	restarts            int
	fallbackCandidates  []int
	logger              *Logger
	metricsCollector    MetricsCollector
}

func defaultOptions() options {
	return options{
		minClusterSize:      DefaultMinClusterSize,
		minSamples:          DefaultMinSamples,
		maxClusterSize:      DefaultMaxClusterSize,
		similarityThreshold: DefaultSimilarityThreshold,
		selectionEpsilon:    DefaultSelectionEpsilon,
		seed:                DefaultSeed,
		restarts:            0, // kmeans applies its own default
		fallbackCandidates:  defaultFallbackCandidates,
		logger:              NoopLogger(),
		metricsCollector:    NoopMetricsCollector{},
	}
}

// Option configures Pipeline behavior.
type Option func(*options)

// WithMinClusterSize sets the smallest viable cluster size. Split fragments
// below it are dropped. Density clustering pairs points at minimum, so it
// treats 1 as 2 (see hdbscan.Options). Values below 1 are ignored.
func WithMinClusterSize(size int) Option {
	return func(o *options) {
		if size >= 1 {
			o.minClusterSize = size
		}
	}
}

// WithMinSamples sets the neighbor count used for density estimation.
// Larger values make clustering more conservative.
func WithMinSamples(samples int) Option {
	return func(o *options) {
		if samples >= 1 {
			o.minSamples = samples
		}
	}
}

// WithMaxClusterSize sets the cluster size above which clusters are split.
func WithMaxClusterSize(size int) Option {
	return func(o *options) {
		if size >= 1 {
			o.maxClusterSize = size
		}
	}
}

// WithSimilarityThreshold sets the cosine similarity a noise point's best
// clustered neighbor must strictly exceed for the point to be reassigned.
func WithSimilarityThreshold(threshold float32) Option {
	return func(o *options) {
		o.similarityThreshold = threshold
	}
}

// WithSelectionEpsilon sets the slack radius for density cluster selection,
// on the cosine-distance scale (1 - similarity). Density clusters born
// within the slack merge into their ancestor, trading granularity for
// robustness against near-duplicate embeddings: the default of 0.05 keeps a
// set of vectors with pairwise cosine similarity above 0.95 together as one
// cluster.
func WithSelectionEpsilon(epsilon float64) Option {
	return func(o *options) {
		if epsilon >= 0 {
			o.selectionEpsilon = epsilon
		}
	}
}

// WithSeed sets the base seed for partitional clustering. Runs with the same
// input and seed produce identical membership.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithRestarts sets the number of seeded restarts per partitional clustering
// call.
func WithRestarts(restarts int) Option {
	return func(o *options) {
		if restarts >= 1 {
			o.restarts = restarts
		}
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector sets the metrics collector. If nil is passed, metrics
// collection is disabled.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metricsCollector = collector
	}
}
