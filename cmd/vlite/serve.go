package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/vlite/internal/demo"
	"github.com/vango-dev/vlite/pkg/host/memdom"
	"github.com/vango-dev/vlite/pkg/metrics"
	"github.com/vango-dev/vlite/pkg/server"
)

func serveCmd(c *cli) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve <demo>",
		Short: "Serve a demo app as live sessions",
		Long: `Start an HTTP server where every browser tab gets its own live
session of the demo app. DOM events travel over a WebSocket and each
dispatch re-renders the whole tree.

Examples:
  vlite serve counter
  vlite serve todo --port=8080
  vlite serve todo --host=0.0.0.0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if port > 0 {
				c.cfg.Server.Port = port
			}
			if host != "" {
				c.cfg.Server.Host = host
			}

			srv, err := c.newServer(args[0])
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			success(cmd, "Serving %s on %s", args[0], c.cfg.URL())
			return srv.Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from vlite.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from vlite.json)")

	return cmd
}

// newServer wires config, metrics and tracing into a server for the named
// demo.
func (c *cli) newServer(name string) (*server.Server, error) {
	factory, err := demo.Lookup(name)
	if err != nil {
		return nil, err
	}
	readTimeout, err := c.cfg.ReadTimeout()
	if err != nil {
		return nil, err
	}
	writeTimeout, err := c.cfg.WriteTimeout()
	if err != nil {
		return nil, err
	}

	setup := c.setup()
	setup.Tracer = metrics.Tracer("")

	cfg := server.Config{
		Address:        c.cfg.Address(),
		Title:          name,
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		AllowedOrigins: c.cfg.Server.AllowedOrigins,
	}
	opts := []server.Option{
		server.WithLogger(c.logger.With("component", "server")),
		server.WithTracer(setup.Tracer),
	}

	if c.cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m := metrics.New(
			metrics.WithRegistry(reg),
			metrics.WithNamespace(c.cfg.Metrics.Namespace),
			metrics.WithConstLabels(prometheus.Labels{"app": name}),
		)
		setup.Metrics = m
		cfg.MetricsPath = c.cfg.Metrics.Path
		cfg.Gatherer = reg
		opts = append(opts, server.WithMetrics(m))
	}

	mount := func(doc *memdom.Document, root *memdom.Element) (server.Session, error) {
		return factory(doc, root, setup)
	}
	return server.New(cfg, mount, opts...), nil
}
