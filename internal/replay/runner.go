// Package replay executes parsed operation scripts against an LRU cache.
package replay

import (
	"github.com/jmurray2011/lrucache/internal/logging"
	"github.com/jmurray2011/lrucache/internal/script"
	"github.com/jmurray2011/lrucache/pkg/lru"
)

// Result records the outcome of one operation and the cache state after it.
type Result struct {
	Line    int         `json:"line"`
	Op      script.Kind `json:"op"`
	Key     string      `json:"key,omitempty"`
	Value   string      `json:"value,omitempty"`
	Hit     bool        `json:"hit"`
	Evicted string      `json:"evicted,omitempty"`
	Len     int         `json:"len"`
	Keys    []string    `json:"keys"`
}

// Runner owns a single cache and applies operations to it in order.
type Runner struct {
	cache  *lru.Cache[string, string]
	logger logging.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for per-operation debug output.
func WithLogger(l logging.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// NewRunner creates a Runner over a fresh cache of the given capacity.
func NewRunner(capacity int, opts ...Option) (*Runner, error) {
	cache, err := lru.New[string, string](capacity)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		cache:  cache,
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.WithField("capacity", capacity)
	return r, nil
}

// Cache returns the underlying cache.
func (r *Runner) Cache() *lru.Cache[string, string] {
	return r.cache
}

// Run applies every op and returns one Result per op.
func (r *Runner) Run(ops []script.Op) []Result {
	results := make([]Result, 0, len(ops))
	for _, op := range ops {
		results = append(results, r.Apply(op))
	}
	return results
}

// Apply executes a single op.
func (r *Runner) Apply(op script.Op) Result {
	res := Result{Line: op.Line, Op: op.Kind, Key: op.Key}

	switch op.Kind {
	case script.KindPut:
		res.Value = op.Value
		res.Hit = r.cache.Contains(op.Key)
		if !res.Hit && r.cache.Len() == r.cache.Capacity() {
			res.Evicted, _ = r.cache.Oldest()
		}
		r.cache.Put(op.Key, op.Value)
	case script.KindGet:
		res.Value, res.Hit = r.cache.Get(op.Key)
	}

	res.Len = r.cache.Len()
	res.Keys = r.cache.Keys()

	log := r.logger.WithField("line", op.Line)
	switch {
	case res.Evicted != "":
		log.Debug("%s evicted %s", op, res.Evicted)
	case op.Kind == script.KindGet && !res.Hit:
		log.Debug("%s missed", op)
	default:
		log.Debug("%s", op)
	}

	return res
}
