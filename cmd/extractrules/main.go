package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/esdguide/ruletracker/constants"
	"github.com/esdguide/ruletracker/internal/extract"
)

// extractrules runs the local extractors over a document on disk and
// prints the result as JSON. Useful for checking what a document will
// yield before uploading it.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "extractrules <document-path>")
		os.Exit(2)
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

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	extractor, err := extract.New(format, content)
	if err != nil {
		logger.Error("open document", "path", path, "format", format, "error", err)
		os.Exit(1)
	}

	start := time.Now()
	result, err := extract.Process(ctx, extractor)
	if err != nil {
		logger.Error("extraction failed", "path", path, "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	// Strip image bytes from stdout; report names and sizes instead.
	type imageInfo struct {
		Filename string `json:"filename"`
		MimeType string `json:"mime_type,omitempty"`
		Bytes    int    `json:"bytes"`
	}
	images := make([]imageInfo, 0, len(result.Images))
	for _, img := range result.Images {
		images = append(images, imageInfo{Filename: img.Filename, MimeType: img.MimeType, Bytes: len(img.Data)})
	}

	out := map[string]any{
		"document": path,
		"format":   format,
		"rules":    result.Rules,
		"metadata": result.Metadata,
		"images":   images,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, "encode output:", err)
		os.Exit(1)
	}
}
