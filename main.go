////////////////////////////////////////////////////////////////////////////////
// Okinoko governance: multi-tenant DAO governance engine
// Script harness entry point
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	"okinoko_governance/contract"
	"okinoko_governance/internal/config"
	"okinoko_governance/internal/harness"
	"okinoko_governance/sdk"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "okinoko: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configFile, envFile, scriptFile string
	flagSet := pflag.NewFlagSet("okinoko", pflag.ContinueOnError)
	flagSet.StringVarP(&configFile, "config", "c", "", "path to config file to load")
	flagSet.StringVar(&envFile, "env-file", ".env", "env file loaded before the environment is read")
	flagSet.StringVarP(&scriptFile, "script", "s", "", "call script to replay (overrides the config, default stdin)")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	config.LoadDotEnv(envFile)
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if scriptFile != "" {
		cfg.Script = scriptFile
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	st, err := harness.OpenStore(cfg, logger)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Storage, err)
	}
	defer st.Close()

	promRegistry := prometheus.NewRegistry()
	ledger := sdk.NewMockLedger()
	token := sdk.NewMockToken("Okinoko", "OKI", 3)
	c := contract.New(
		st,
		ledger,
		contract.WithLogger(logger),
		contract.WithPromRegistry(promRegistry),
	)

	data, err := readScript(cfg.Script)
	if err != nil {
		return err
	}
	script, err := harness.ParseScript(data)
	if err != nil {
		return err
	}
	results := harness.NewRunner(c, ledger, token, logger).Run(script)
	out, err := harness.RenderResults(results)
	if err != nil {
		return fmt.Errorf("render results: %w", err)
	}
	if _, err := os.Stdout.Write(append(out, '\n')); err != nil {
		return err
	}

	if cfg.MetricsAddr == "" {
		return nil
	}
	return serveMetrics(cfg.MetricsAddr, promRegistry, logger)
}

// readScript reads the call script from path, or stdin when path is empty.
func readScript(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading script: %w", err)
	}
	return data, nil
}

// serveMetrics keeps the replay's metrics scrapeable until interrupted.
func serveMetrics(addr string, registry *prometheus.Registry, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	metricsServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 60 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	errChan := make(chan error, 1)
	go func() {
		logger.Info("serving prometheus metrics on "+addr, "component", "main")
		if err := metricsServer.ListenAndServe(); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// Wait for interrupt/termination signal
	signalCtx, signalCtxStop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer signalCtxStop()

	select {
	case err := <-errChan:
		return fmt.Errorf("failed to start metrics listener: %w", err)
	case <-signalCtx.Done():
		logger.Info("signal received, shutting down metrics server")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return metricsServer.Shutdown(shutdownCtx)
}
