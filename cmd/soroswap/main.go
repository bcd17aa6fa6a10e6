package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/defistate/soroswap-client-go/client"
	"github.com/defistate/soroswap-client-go/cmd/soroswap/config"
	"github.com/defistate/soroswap-client-go/networks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
)

const (
	ConfigFlag  = "config"
	NetworkFlag = "network"
	DebugFlag   = "debug"
)

func main() {
	// Create a context that cancels when the OS sends an interrupt (Ctrl+C) or termination signal.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).Error("Command failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "soroswap",
		Usage: "Query the Soroswap API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    ConfigFlag,
				Aliases: []string{"c"},
				Usage:   "Path to the YAML configuration file",
			},
			&cli.StringFlag{
				Name:    NetworkFlag,
				Aliases: []string{"n"},
				Usage:   "Network to query (mainnet or testnet), overrides the configuration",
			},
			&cli.BoolFlag{
				Name:  DebugFlag,
				Usage: "Log every request",
			},
		},
		Commands: commands(),
	}
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newClient builds a client from the configuration file, the environment and the
// global flags, in increasing order of precedence.
func newClient(cCtx *cli.Context) (*client.Client, error) {
	rootLogger := newLogger(cCtx.Bool(DebugFlag))

	cfg, err := config.LoadConfig(cCtx.String(ConfigFlag))
	if err != nil {
		return nil, err
	}

	network := cfg.Network
	if v := cCtx.String(NetworkFlag); v != "" {
		if network, err = networks.Parse(v); err != nil {
			return nil, err
		}
	}

	return client.New(
		client.Config{
			APIKey:         cfg.APIKey,
			BaseURL:        cfg.BaseURL,
			DefaultNetwork: network,
			Timeout:        cfg.Timeout,
		},
		client.WithLogger(rootLogger.With("component", "soroswap-client")),
		client.WithRegisterer(prometheus.DefaultRegisterer),
	)
}

type actionFunc func(ctx context.Context, c *client.Client, cCtx *cli.Context) (any, error)

// action wraps fn so that it runs against a configured client and prints its result.
func action(fn actionFunc) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		c, err := newClient(cCtx)
		if err != nil {
			return err
		}
		out, err := fn(cCtx.Context, c, cCtx)
		if err != nil {
			return err
		}
		return writeJSON(cCtx.App.Writer, out)
	}
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
