// Memos-mcp is an MCP server that exposes a Memos instance as tools over
// stdio. Connection settings (MEMOS_API_URL, MEMOS_TOKEN) are resolved on the
// first tool call, so the server starts even when they are missing.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/openclaw/memos-mcp/pkg/config"
	"github.com/openclaw/memos-mcp/pkg/memos"
	"github.com/openclaw/memos-mcp/pkg/memotools"
	"github.com/openclaw/memos-mcp/pkg/tools/mcpserver"
	"github.com/openclaw/memos-mcp/pkg/tools/toolbox"
)

const (
	serverName    = "openclaw-memos-mcp"
	serverVersion = "0.1.0"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: memos-mcp [flags]\n\nServe Memos tools over MCP on stdin/stdout.\n\nFlags:\n")
		flag.PrintDefaults()
	}

	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	settingsFile := flag.String("config", "", "path to YAML settings file with api_url and token (optional)")
	verbose := flag.Bool("verbose", false, "log API requests and tool starts")
	flag.Parse()

	log := newLogger(os.Stderr, *verbose)

	if err := run(log, config.Options{EnvFile: *envFile, SettingsFile: *settingsFile}); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger returns a text logger on w. Stdout is reserved for MCP frames.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newToolBox wires the config loader, API client and memo tools together.
func newToolBox(log *slog.Logger, opts config.Options) *toolbox.ToolBox {
	loader := config.NewLoader(opts)
	client := memos.New(loader.Config, memos.WithLogger(log))

	tb := memotools.New(client).Tools()
	tb.Use(toolbox.Logger(log), toolbox.Recovery())

	return tb
}

// run serves the memo tools on stdio until the client disconnects or the
// process receives SIGINT/SIGTERM.
func run(log *slog.Logger, opts config.Options) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := mcpserver.New(serverName, serverVersion)
	srv.Register(newToolBox(log, opts))

	log.Info("serving", "server", serverName, "version", serverVersion)

	return srv.Serve(ctx, os.Stdin, os.Stdout)
}
