package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/kbdlayout/pkg/cache"
	"github.com/matzehuels/kbdlayout/pkg/pipeline"
	"github.com/matzehuels/kbdlayout/pkg/server"
)

// redisPrefix namespaces the server's keys in a shared Redis.
const redisPrefix = appName + ":"

type serveOpts struct {
	addr       string
	redisAddr  string
	includeDir string
	noCache    bool
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render API",
		Long: `Run the HTTP render API.

  GET  /healthz
  GET  /geometries
  POST /render?geometry=iso&format=svg   (body: keymap source)

Rendered artifacts are cached in Redis when --redis is set, otherwise in
the local file cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.addr == "" {
				opts.addr = c.cfg.Server.Addr
			}
			if opts.redisAddr == "" {
				opts.redisAddr = c.cfg.Cache.RedisAddr
			}
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "Redis address for the artifact cache")
	cmd.Flags().StringVarP(&opts.includeDir, "include-dir", "I", "", "directory include files are resolved in")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	runner, err := c.newServerRunner(ctx, opts)
	if err != nil {
		return err
	}
	defer runner.Close()

	defaults := c.pipelineOptions()
	if opts.includeDir != "" {
		defaults.IncludeDir = opts.includeDir
	}

	srv := server.New(runner,
		server.WithDefaults(defaults),
		server.WithMaxBodyBytes(c.cfg.Server.MaxBodyBytes),
		server.WithLogger(c.Logger),
	)
	printInfo(c.Out, "Serving on %s", opts.addr)
	return srv.ListenAndServe(ctx, opts.addr)
}

// newServerRunner builds a runner on Redis when configured, else on the
// file cache. Server keys are scoped so they never collide with CLI entries.
func (c *CLI) newServerRunner(ctx context.Context, opts serveOpts) (*pipeline.Runner, error) {
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "api:")
	if opts.redisAddr != "" && !opts.noCache {
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: opts.redisAddr, Prefix: redisPrefix})
		if err != nil {
			return nil, err
		}
		c.Logger.Info("using redis cache", "addr", opts.redisAddr)
		return pipeline.NewRunner(rc, keyer, c.Logger), nil
	}
	fc, err := c.newCache(opts.noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(fc, keyer, c.Logger), nil
}
