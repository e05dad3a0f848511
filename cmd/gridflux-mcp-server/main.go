package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"gopkg.in/yaml.v3"

	"github.com/gridflux/gridflux-mcp-server/internal/app"
	"github.com/gridflux/gridflux-mcp-server/internal/audit"
	"github.com/gridflux/gridflux-mcp-server/internal/catalog"
	"github.com/gridflux/gridflux-mcp-server/internal/config"
	"github.com/gridflux/gridflux-mcp-server/internal/log"
	"github.com/gridflux/gridflux-mcp-server/internal/platform"
	"github.com/gridflux/gridflux-mcp-server/internal/runtime"
	"github.com/gridflux/gridflux-mcp-server/internal/summary"
)

const serverName = "gridflux-mcp-server"

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	printCatalog := flag.Bool("print-catalog", false, "Print the tool catalog as YAML and exit")
	flag.Parse()

	if *printCatalog {
		if err := dumpCatalog(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "print catalog: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(cfg.LogLevel)

	ops := catalog.Operations()
	client := &platform.Client{
		BaseURL: cfg.BaseURL,
		Token:   cfg.APIToken,
		APIKey:  cfg.APIKey,
		HTTP:    platform.NewHTTPClient(cfg.ProxyURL, cfg.HTTPTimeout),
		Limiter: platform.NewLimiter(cfg.RatePerMinute),
	}

	mode := cfg.CredentialMode()
	overview, err := summary.Render(summary.Info{
		BaseURL:        cfg.BaseURL,
		CredentialMode: string(mode),
		ToolCount:      len(ops),
		Areas:          catalog.Areas(ops),
	})
	if err != nil {
		logger.Error("render platform overview failed", "error", err)
		os.Exit(1)
	}

	builder := runtime.Builder{
		Name:    serverName,
		Version: version,
		Logger:  logger,
		Audit:   audit.New(logger),
		Client:  client,
		Catalog: ops,
		Summary: overview,
	}
	server, err := builder.Build()
	if err != nil {
		logger.Error("build server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("starting server",
		"name", serverName,
		"version", version,
		"base_url", cfg.BaseURL,
		"credential_mode", mode,
		"transport", cfg.Transport,
		"tools", len(ops),
	)
	if cfg.ProxyURL != nil {
		logger.Info("outbound proxy enabled", "proxy", cfg.ProxyURL.Redacted())
	}
	if mode == config.CredentialDemo {
		logger.Warn("no credentials configured, demo endpoints will serve read-only data where available")
	}

	baseCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)
	go func() {
		sig := <-sigCh
		logger.Warn("shutdown requested", "signal", sig.String())
		cancel()
	}()

	switch cfg.Transport {
	case "stdio":
		// A canceled context is the normal signal-driven exit, not a failure.
		if err := runStdio(baseCtx, server); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("runtime error", "error", err)
			os.Exit(1)
		}
	default:
		if err := runHTTP(baseCtx, cfg, server, logger); err != nil {
			logger.Error("runtime error", "error", err)
			os.Exit(1)
		}
	}
}

func runStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

func runHTTP(ctx context.Context, cfg config.Config, server *mcp.Server, logger *slog.Logger) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{
		Stateless: cfg.HTTPStateless,
	})

	application, err := app.New(app.Options{
		Listen:          cfg.HTTPListen,
		Path:            cfg.HTTPPath,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, handler, logger)
	if err != nil {
		return err
	}

	return application.Run(ctx)
}

// dumpCatalog writes the compiled tool catalog as YAML, for docs and for
// diffing catalog changes in review.
func dumpCatalog(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(catalog.Operations()); err != nil {
		return err
	}
	return enc.Close()
}
