package main

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dstarlite/metrics"
	"github.com/katalvlaran/dstarlite/scenario"
)

func newWatchCmd(a *app) *cobra.Command {
	var metricsAddr string
	cmd := &cobra.Command{
		Use:   "watch <scenario.yaml>",
		Short: "Plan, then replan incrementally every time the scenario file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), a, cmd, args[0], metricsAddr)
		},
	}
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")

	return cmd
}

func runWatch(ctx context.Context, a *app, cmd *cobra.Command, path, metricsAddr string) error {
	loader, err := scenario.NewLoader(path, a.logger)
	if err != nil {
		return errors.Wrapf(err, "loading %s", path)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	m := metrics.New(reg)
	if metricsAddr != "" {
		srv := serveMetrics(a, reg, metricsAddr)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	s := loader.Scenario()
	ss, err := newSession(s, s.Grid.Rows, a.logger, m, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err = ss.applyChanges(s.Changes); err != nil {
		return err
	}

	var mu sync.Mutex
	loader.OnChange(func(old, cur *scenario.Scenario) {
		mu.Lock()
		defer mu.Unlock()
		next, err := ss.update(old, cur)
		if err != nil {
			a.logger.WithError(err).Error("replan failed")
		}
		if next != nil {
			ss = next
		}
	})

	stop, err := loader.Watch()
	if err != nil {
		return errors.Wrap(err, "watching scenario")
	}
	defer stop()
	a.logger.WithField("path", path).Info("watching scenario for changes")

	<-ctx.Done()

	return nil
}

func serveMetrics(a *app, reg *prometheus.Registry, addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.WithError(err).Error("metrics server stopped")
		}
	}()
	a.logger.WithField("addr", addr).Info("serving metrics")

	return srv
}
