package mcp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/esdguide/ruletracker/constants"
)

// ErrPollLimitExceeded reports that an asynchronous analysis task was
// still running when the bounded polling budget ran out. It is distinct
// from an explicit failure reported by the service.
var ErrPollLimitExceeded = errors.New("poll limit exceeded while waiting for analysis task")

var errStillProcessing = errors.New("analysis task still processing")

// Client talks to the external document-analysis service. It is a
// protocol client, not a state machine: callers own document status
// transitions.
type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout()},
		log:  logger,
	}
}

func (c *Client) headers() map[string]string {
	h := map[string]string{}
	if c.cfg.APIKey != "" {
		h["Authorization"] = "Bearer " + c.cfg.APIKey
	}
	return h
}

func (c *Client) url(path string) string {
	return strings.TrimRight(c.cfg.ServerURL, "/") + path
}

// Ping reports whether the analysis service is reachable. The response
// body is ignored; only a 200 counts.
func (c *Client) Ping(ctx context.Context) error {
	_, status, err := sendJSON(ctx, c.http, http.MethodGet, c.url("/ping"), nil, c.headers(), c.log)
	if err != nil {
		return fmt.Errorf("ping analysis service: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("ping analysis service: unexpected status %d", status)
	}
	return nil
}

// AnalyzeDocument submits a whole document for rule extraction. A 200
// response carries the result inline; a 202 response carries a task id
// which is polled at a fixed interval for a bounded number of attempts.
func (c *Client) AnalyzeDocument(ctx context.Context, name string, format constants.DocumentFormat, content []byte) (*AnalysisResult, error) {
	start := time.Now()
	req := analyzeRequest{
		Document: analyzeDocument{
			Name:    name,
			Type:    strings.ToLower(string(format)),
			Content: base64.StdEncoding.EncodeToString(content),
		},
		AnalysisType: "rule_extraction",
		Options: analyzeOptions{
			ExtractRules:      c.cfg.ExtractRules,
			ExtractMetadata:   c.cfg.ExtractMetadata,
			ExtractImages:     c.cfg.ExtractImages,
			UseAdvancedModels: c.cfg.UseAdvancedModels,
		},
	}

	c.log.Info("mcp.analyze.request", "document", name, "format", format, "bytes", len(content))

	raw, status, err := sendJSON(ctx, c.http, http.MethodPost, c.url("/analyze"), req, c.headers(), c.log)
	if err != nil {
		return nil, fmt.Errorf("analyze document: %w", err)
	}

	switch status {
	case http.StatusAccepted:
		var accepted analyzeAccepted
		if err := json.Unmarshal(raw, &accepted); err != nil || accepted.TaskID == "" {
			return nil, fmt.Errorf("analyze document: malformed 202 response")
		}
		c.log.Info("mcp.analyze.accepted", "document", name, "task_id", accepted.TaskID)
		result, err := c.pollTask(ctx, accepted.TaskID)
		if err != nil {
			return nil, err
		}
		c.log.Info("mcp.analyze.completed", "document", name, "task_id", accepted.TaskID,
			"rules", len(result.Rules), "elapsed_ms", time.Since(start).Milliseconds())
		return result, nil

	case http.StatusOK:
		result, err := decodeResult(raw)
		if err != nil {
			return nil, fmt.Errorf("analyze document: %w", err)
		}
		c.log.Info("mcp.analyze.completed", "document", name,
			"rules", len(result.Rules), "elapsed_ms", time.Since(start).Milliseconds())
		return result, nil

	default:
		return nil, fmt.Errorf("analyze document: unexpected status %d", status)
	}
}

// pollTask polls /tasks/{id} at a constant interval until the task
// completes, fails, or the attempt budget is exhausted.
func (c *Client) pollTask(ctx context.Context, taskID string) (*AnalysisResult, error) {
	var result *AnalysisResult

	operation := func() error {
		raw, _, err := sendJSON(ctx, c.http, http.MethodGet, c.url("/tasks/"+taskID), nil, c.headers(), c.log)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("poll task %s: %w", taskID, err))
		}

		var st taskStatus
		if err := json.Unmarshal(raw, &st); err != nil {
			return backoff.Permanent(fmt.Errorf("poll task %s: decode status: %w", taskID, err))
		}

		switch st.Status {
		case "completed":
			if len(st.Result) == 0 {
				return backoff.Permanent(fmt.Errorf("poll task %s: completed without result", taskID))
			}
			decoded, err := decodeResult(st.Result)
			if err != nil {
				return backoff.Permanent(fmt.Errorf("poll task %s: %w", taskID, err))
			}
			result = decoded
			return nil
		case "failed":
			reason := st.Error
			if reason == "" {
				reason = "task failed"
			}
			return backoff.Permanent(fmt.Errorf("analysis task %s failed: %s", taskID, reason))
		default:
			c.log.Debug("mcp.task.processing", "task_id", taskID)
			return errStillProcessing
		}
	}

	// WithMaxRetries counts retries after the first attempt, so the
	// budget is attempts-1 retries for PollMaxAttempts total polls.
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.cfg.PollInterval), uint64(c.cfg.PollMaxAttempts-1)),
		ctx,
	)

	if err := backoff.Retry(operation, policy); err != nil {
		if errors.Is(err, errStillProcessing) {
			return nil, fmt.Errorf("task %s: %w", taskID, ErrPollLimitExceeded)
		}
		return nil, err
	}
	return result, nil
}

// decodeResult validates and decodes an inline analysis payload. An
// explicit error field in the body is surfaced as a failure even on a
// 200 response.
func decodeResult(raw []byte) (*AnalysisResult, error) {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != "" {
		return nil, fmt.Errorf("analysis service error: %s", envelope.Error)
	}

	if err := validateJSONAgainstSchema(analysisResultSchema(), raw); err != nil {
		return nil, err
	}

	var result AnalysisResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode analysis result: %w", err)
	}
	return &result, nil
}
