package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	rulespb "github.com/esdguide/ruletracker/gen/proto/rules/v1"
	"github.com/esdguide/ruletracker/internal/async"
	"github.com/esdguide/ruletracker/internal/common"
	"github.com/esdguide/ruletracker/internal/export"
	"github.com/esdguide/ruletracker/internal/ingest"
	"github.com/esdguide/ruletracker/internal/mcp"
	"github.com/esdguide/ruletracker/internal/pipeline"
	repo "github.com/esdguide/ruletracker/internal/repository"
	"github.com/esdguide/ruletracker/internal/rules"
	svc "github.com/esdguide/ruletracker/internal/server"
	"github.com/esdguide/ruletracker/internal/validation"
)

func main() {
	// Structured logger: messages with variables, no time/level noise.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	// Analysis service client. A missing config file just means
	// defaults; an unreachable service only disables the AI path once
	// a job actually runs.
	mcpCfg, err := mcp.LoadConfig(os.Getenv("MCP_CONFIG_PATH"))
	if err != nil {
		logger.Error("invalid analysis service configuration", "error", err)
		os.Exit(1)
	}
	analyzer := mcp.NewClient(mcpCfg, logger)
	if err := analyzer.Ping(ctx); err != nil {
		logger.Warn("analysis service unreachable at startup", "server_url", mcpCfg.ServerURL, "error", err)
	}

	docsRepo := repo.NewDocumentRepository(entc, logger)
	validationRepo := repo.NewValidationRepository(entc, logger)
	rulesRepo := repo.NewRuleRepository(entc, logger)
	techRepo := repo.NewTechnologyRepository(entc, logger)

	processor := pipeline.NewProcessor(logger, docsRepo, validationRepo, analyzer, mcpCfg.ConfidenceThreshold)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(512),
		async.WithProcessTimeout(cfg.Pipeline.ProcessTimeout),
	)

	// Optional filesystem intake: drop documents into a watched
	// directory and they are stored and queued automatically.
	if dirs := os.Getenv("WATCH_DIRS"); dirs != "" {
		roots := strings.Split(dirs, ",")
		intake := ingest.NewIntake(docsRepo, queue, os.Getenv("WATCH_USE_AI") == "true", logger)
		events, watchErrs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       roots,
			InitialScan: true,
			Debounce:    2 * time.Second,
		})
		if err != nil {
			logger.Error("failed to start document watcher", "roots", roots, "error", err)
			os.Exit(1)
		}
		go func() {
			for {
				select {
				case path, ok := <-events:
					if !ok {
						return
					}
					if _, err := intake.IngestPath(ctx, path); err != nil {
						logger.Error("intake failed", "path", path, "error", err)
					}
				case err, ok := <-watchErrs:
					if ok && err != nil {
						logger.Error("watcher error", "error", err)
					}
				}
			}
		}()
		logger.Info("document watcher started", "roots", roots)
	}

	promoter := rules.NewPromoter(cfg.Pipeline.DefaultTechnology, logger)
	validationSvc := validation.NewService(entc, promoter, nil, logger)
	exporter := export.NewService(rulesRepo, techRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	zapLogger, err := zap.NewProduction()
	if err != nil {
		logger.Error("failed to build rpc logger", "error", err)
		os.Exit(1)
	}
	defer func() { _ = zapLogger.Sync() }()
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(svc.UnaryLoggingInterceptor(zapLogger)),
	)

	rulespb.RegisterDocumentsServiceServer(grpcServer, svc.NewDocumentsServer(docsRepo, processor, queue, logger))
	rulespb.RegisterValidationServiceServer(grpcServer, svc.NewValidationServer(validationSvc, validationRepo, logger))
	rulespb.RegisterRulesServiceServer(grpcServer, svc.NewRulesServer(rulesRepo, techRepo, exporter, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("ruletracker listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
