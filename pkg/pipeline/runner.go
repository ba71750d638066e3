package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/texweave/texweave/pkg/buildinfo"
	"github.com/texweave/texweave/pkg/cache"
	"github.com/texweave/texweave/pkg/observability"
)

const cacheKeyType = "build"

// Runner executes builds with caching.
//
// The Runner is stateless except for the cache and logger, so one Runner
// may serve many goroutines with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	// TTL for cached builds. Zero means cache.DefaultTTL.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// A nil keyer means the default keyer; a nil cache disables caching.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.DefaultTTL,
	}
}

// cachedBuild is what a cache entry holds.
type cachedBuild struct {
	Title   string `json:"title,omitempty"`
	TeX     string `json:"tex"`
	Outline string `json:"outline,omitempty"`
	Nodes   int    `json:"nodes"`
}

// Execute decodes and renders opts.Source, consulting the cache first
// unless opts.Refresh is set.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	start := time.Now()
	result := &Result{
		ID:         uuid.New(),
		SourceHash: cache.Hash(opts.Source),
	}
	logger := opts.Logger.With("build", result.ID.String()[:8])

	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, opts.Format, opts.Filename)

	key := r.Keyer.BuildKey(result.SourceHash, r.keyOpts(opts))
	if !opts.Refresh {
		if cached, ok := r.lookup(ctx, key); ok {
			result.CacheHit = true
			result.Title = cached.Title
			result.TeX = cached.TeX
			result.OutlineDOT = cached.Outline
			result.Stats.Nodes = cached.Nodes
			result.Stats.Bytes = len(cached.TeX)
			result.Stats.Duration = time.Since(start)
			logger.Debug("cache hit", "key", key)
			hooks.OnBuildComplete(ctx, opts.Format, cached.Nodes, result.Stats.Duration, nil)
			return result, nil
		}
	}

	decodeStart := time.Now()
	doc, err := Decode(opts)
	if err != nil {
		hooks.OnBuildComplete(ctx, opts.Format, 0, time.Since(start), err)
		return nil, fmt.Errorf("decode: %w", err)
	}
	result.Document = doc
	result.Title = doc.Title()
	result.Stats.Nodes = doc.NodeCount()
	result.Stats.DecodeTime = time.Since(decodeStart)

	logger.Info("decoded document",
		"format", opts.Format,
		"nodes", result.Stats.Nodes,
		"duration", result.Stats.DecodeTime)

	renderStart := time.Now()
	tex, err := RenderTeX(doc)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, len(tex), result.Stats.RenderTime, err)
	if err != nil {
		hooks.OnBuildComplete(ctx, opts.Format, result.Stats.Nodes, time.Since(start), err)
		return nil, fmt.Errorf("render: %w", err)
	}
	result.TeX = tex
	result.Stats.Bytes = len(tex)

	if opts.Outline {
		result.OutlineDOT = RenderOutline(doc)
	}

	logger.Info("rendered LaTeX",
		"bytes", result.Stats.Bytes,
		"duration", result.Stats.RenderTime)

	r.store(ctx, key, cachedBuild{
		Title:   result.Title,
		TeX:     result.TeX,
		Outline: result.OutlineDOT,
		Nodes:   result.Stats.Nodes,
	})

	result.Stats.Duration = time.Since(start)
	hooks.OnBuildComplete(ctx, opts.Format, result.Stats.Nodes, result.Stats.Duration, nil)
	return result, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) keyOpts(opts Options) cache.BuildKeyOpts {
	return cache.BuildKeyOpts{
		Format:   opts.Format,
		Class:    opts.Class,
		Packages: opts.Packages,
		Outline:  opts.Outline,
		Version:  buildinfo.Version,
	}
}

// lookup treats cache errors and undecodable entries as misses.
func (r *Runner) lookup(ctx context.Context, key string) (cachedBuild, bool) {
	var cb cachedBuild
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
	}
	if err != nil || !hit || json.Unmarshal(data, &cb) != nil {
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		return cachedBuild{}, false
	}
	observability.Cache().OnCacheHit(ctx, cacheKeyType)
	return cb, true
}

func (r *Runner) store(ctx context.Context, key string, cb cachedBuild) {
	data, err := json.Marshal(cb)
	if err != nil {
		return
	}
	ttl := r.TTL
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
