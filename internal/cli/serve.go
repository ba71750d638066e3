package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/texweave/texweave/internal/api"
	"github.com/texweave/texweave/pkg/cache"
	"github.com/texweave/texweave/pkg/pipeline"
	"github.com/texweave/texweave/pkg/storage"
)

// serveOpts holds the serve flags. Empty values fall back to config.
type serveOpts struct {
	addr    string
	apiKey  string
	redis   string
	mongo   string
	maxBody int64
}

// serveCommand runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render API",
		Long: `Run the HTTP render API.

Builds are cached in Redis when --redis (or [redis] addr) is set, else in
the local cache directory. Stored documents go to MongoDB when --mongo
(or [mongo] uri) is set, else they are kept in memory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&opts.apiKey, "api-key", "", "require this bearer token on /api routes")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "Redis address for the build cache")
	cmd.Flags().StringVar(&opts.mongo, "mongo", "", "MongoDB URI for stored documents")
	cmd.Flags().Int64Var(&opts.maxBody, "max-body", 0, "request body limit in bytes")
	return cmd
}

// merge fills unset flags from the config file.
func (o serveOpts) merge(cfg Config) serveOpts {
	if o.addr == "" {
		o.addr = cfg.Server.Addr
	}
	if o.apiKey == "" {
		o.apiKey = cfg.Server.APIKey
	}
	if o.redis == "" {
		o.redis = cfg.Redis.Addr
	}
	if o.mongo == "" {
		o.mongo = cfg.Mongo.URI
	}
	if o.maxBody == 0 {
		o.maxBody = cfg.Server.MaxBody
	}
	return o
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)
	opts = opts.merge(c.Config)

	runner, err := c.serverRunner(ctx, opts)
	if err != nil {
		return err
	}
	defer runner.Close()

	store, err := c.serverStore(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = store.Close(closeCtx)
	}()

	srv := api.NewServer(runner, store, logger, api.Config{
		APIKey:   opts.apiKey,
		MaxBody:  opts.maxBody,
		Class:    c.Config.Document.Class,
		Packages: c.Config.Document.Packages,
	})
	return srv.ListenAndServe(ctx, opts.addr)
}

func (c *CLI) serverRunner(ctx context.Context, opts serveOpts) (*pipeline.Runner, error) {
	logger := loggerFromContext(ctx)
	if opts.redis == "" {
		return c.newRunner(ctx, false)
	}

	rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
		Addr:     opts.redis,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
		Prefix:   appName + ":",
	})
	if err != nil {
		return nil, err
	}
	logger.Info("using redis cache", "addr", opts.redis)
	runner := pipeline.NewRunner(rc, cache.NewScopedKeyer(nil, "api:"), logger)
	runner.TTL = c.Config.CacheTTL()
	return runner, nil
}

func (c *CLI) serverStore(ctx context.Context, opts serveOpts) (storage.Store, error) {
	if opts.mongo == "" {
		return storage.NewMemoryStore(), nil
	}
	store, err := storage.NewMongoStore(ctx, storage.MongoConfig{
		URI:        opts.mongo,
		Database:   c.Config.Mongo.Database,
		Collection: c.Config.Mongo.Collection,
	})
	if err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Info("using mongodb store", "database", c.Config.Mongo.Database)
	return store, nil
}
