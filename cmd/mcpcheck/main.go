package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/esdguide/ruletracker/constants"
	"github.com/esdguide/ruletracker/internal/mcp"
)

// mcpcheck verifies connectivity to the analysis service. With a
// document argument it runs a full analysis round-trip and prints the
// returned candidates.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := mcp.LoadConfig(os.Getenv("MCP_CONFIG_PATH"))
	if err != nil {
		logger.Error("load analysis service config", "error", err)
		os.Exit(1)
	}
	client := mcp.NewClient(cfg, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		logger.Error("analysis service unreachable", "server_url", cfg.ServerURL, "error", err)
		os.Exit(1)
	}
	logger.Info("analysis service reachable", "server_url", cfg.ServerURL)

	if len(os.Args) < 2 {
		return
	}

	path := os.Args[1]
	format, err := constants.FormatForExtension(filepath.Ext(path))
	if err != nil {
		logger.Error("unsupported document", "path", path, "error", err)
		os.Exit(2)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read document", "path", path, "error", err)
		os.Exit(1)
	}

	start := time.Now()
	result, err := client.AnalyzeDocument(ctx, filepath.Base(path), format, content)
	if err != nil {
		logger.Error("analysis failed", "path", path, "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	logger.Info("analysis OK",
		"rules", len(result.Rules),
		"images", len(result.Images),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result.Candidates()); err != nil {
		logger.Error("encode output", "error", err)
		os.Exit(1)
	}
}
