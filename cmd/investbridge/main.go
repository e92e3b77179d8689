// investbridge is a one-shot bridge to the Invest API: it reads one JSON
// request from stdin, runs the command named by its first argument, and
// prints exactly one JSON response on stdout. Operation failures are
// reported inside the response body; the process exit code stays zero so
// the calling backend handles every outcome through the same channel.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"investbridge/internal/broker"
	"investbridge/internal/config"
	"investbridge/internal/dispatch"
	"investbridge/internal/util"
)

func main() {
	cfgPath := "config/investbridge.yaml"
	if p := os.Getenv("INVESTBRIDGE_CONFIG"); p != "" {
		cfgPath = p
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		// Startup failure tier: JSON on stderr, non-zero exit.
		json.NewEncoder(os.Stderr).Encode(dispatch.Failure{
			Error: fmt.Sprintf("Failed to load config: %v", err),
		})
		os.Exit(1)
	}

	logger := util.NewLogger(cfg.Logging.Level)
	util.SetDefault(logger)

	out := json.NewEncoder(os.Stdout)

	if len(os.Args) < 2 {
		out.Encode(dispatch.Failure{Error: "Command is required"})
		return
	}
	command := os.Args[1]

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		logger.Warn("reading stdin", "err", err)
		raw = nil
	}
	req := dispatch.ParseRequest(raw)

	d := dispatch.New(cfg, func(ctx context.Context, cfg *config.Config, token string, useSandbox bool) (broker.Broker, error) {
		return broker.DialTinkoff(ctx, cfg, token, useSandbox)
	})

	resp := d.Dispatch(context.Background(), command, req)

	if err := out.Encode(resp); err != nil {
		logger.Error("writing response", "err", err)
		os.Exit(1)
	}
}
