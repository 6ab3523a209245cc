package mcp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esdguide/ruletracker/constants"
)

func testConfig(url string) Config {
	cfg := defaults()
	cfg.ServerURL = url
	cfg.PollInterval = 5 * time.Millisecond
	cfg.PollMaxAttempts = 5
	return cfg
}

func TestPing(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ping", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := NewClient(testConfig(srv.URL), nil)
		require.NoError(t, client.Ping(context.Background()))
	})

	t.Run("unreachable", func(t *testing.T) {
		client := NewClient(testConfig("http://127.0.0.1:1"), nil)
		assert.Error(t, client.Ping(context.Background()))
	})
}

func TestAnalyzeDocumentInline(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/analyze", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		var req analyzeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "design_rules.pdf", req.Document.Name)
		assert.Equal(t, "pdf", req.Document.Type)
		assert.Equal(t, "rule_extraction", req.AnalysisType)

		decoded, err := base64.StdEncoding.DecodeString(req.Document.Content)
		require.NoError(t, err)
		assert.Equal(t, []byte("raw pdf bytes"), decoded)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"rules": []map[string]any{
				{"title": "Guard ring width", "content": "Use at least 2um.", "type": "ESD", "severity": "high", "confidence": 0.91},
			},
			"metadata": map[string]any{"pages": 12},
		})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.APIKey = "secret"
	client := NewClient(cfg, nil)

	result, err := client.AnalyzeDocument(context.Background(), "design_rules.pdf", constants.FormatPDF, []byte("raw pdf bytes"))
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", gotAuth)

	require.Len(t, result.Rules, 1)
	assert.Equal(t, "Guard ring width", result.Rules[0].Title)
	assert.InDelta(t, 0.91, result.Rules[0].Confidence, 1e-6)

	candidates := result.Candidates()
	require.Len(t, candidates, 1)
	assert.Equal(t, "esd", candidates[0].RuleType)
	assert.Equal(t, "critical", candidates[0].Severity)
}

func TestAnalyzeDocumentAsync(t *testing.T) {
	var polls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/analyze":
			w.WriteHeader(http.StatusAccepted)
			_ = json.NewEncoder(w).Encode(analyzeAccepted{TaskID: "task-42"})
		case "/tasks/task-42":
			if polls.Add(1) < 3 {
				_ = json.NewEncoder(w).Encode(taskStatus{Status: "processing"})
				return
			}
			payload, err := json.Marshal(AnalysisResult{
				Rules: []RuleItem{{Title: "Clamp placement", Content: "Place clamps near pads.", Confidence: 0.8}},
			})
			require.NoError(t, err)
			_ = json.NewEncoder(w).Encode(taskStatus{Status: "completed", Result: payload})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nil)
	result, err := client.AnalyzeDocument(context.Background(), "doc.docx", constants.FormatWord, []byte("x"))
	require.NoError(t, err)
	require.Len(t, result.Rules, 1)
	assert.Equal(t, "Clamp placement", result.Rules[0].Title)
	assert.GreaterOrEqual(t, polls.Load(), int32(3))
}

func TestAnalyzeDocumentAsyncInvalidResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/analyze":
			w.WriteHeader(http.StatusAccepted)
			_ = json.NewEncoder(w).Encode(analyzeAccepted{TaskID: "task-7"})
		default:
			// confidence above 1.0 violates the result schema; polled
			// results get the same validation as inline ones
			_ = json.NewEncoder(w).Encode(taskStatus{
				Status: "completed",
				Result: json.RawMessage(`{"rules":[{"title":"T","content":"C","confidence":1.5}]}`),
			})
		}
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nil)
	_, err := client.AnalyzeDocument(context.Background(), "doc.pdf", constants.FormatPDF, []byte("x"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPollLimitExceeded)
	assert.Contains(t, err.Error(), "task-7")
}

func TestAnalyzeDocumentTaskFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/analyze":
			w.WriteHeader(http.StatusAccepted)
			_ = json.NewEncoder(w).Encode(analyzeAccepted{TaskID: "task-9"})
		default:
			_ = json.NewEncoder(w).Encode(taskStatus{Status: "failed", Error: "model overloaded"})
		}
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nil)
	_, err := client.AnalyzeDocument(context.Background(), "doc.pdf", constants.FormatPDF, []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestAnalyzeDocumentPollLimit(t *testing.T) {
	var polls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/analyze":
			w.WriteHeader(http.StatusAccepted)
			_ = json.NewEncoder(w).Encode(analyzeAccepted{TaskID: "task-slow"})
		default:
			polls.Add(1)
			_ = json.NewEncoder(w).Encode(taskStatus{Status: "processing"})
		}
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nil)
	_, err := client.AnalyzeDocument(context.Background(), "doc.pdf", constants.FormatPDF, []byte("x"))
	require.ErrorIs(t, err, ErrPollLimitExceeded)
	// the attempt budget is a total, not a retry count
	assert.Equal(t, int32(5), polls.Load())
}

func TestAnalyzeDocumentInlineError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unsupported document"})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nil)
	_, err := client.AnalyzeDocument(context.Background(), "doc.pdf", constants.FormatPDF, []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported document")
}

func TestAnalyzeDocumentServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nil)
	_, err := client.AnalyzeDocument(context.Background(), "doc.pdf", constants.FormatPDF, []byte("x"))
	assert.Error(t, err)
}

func TestExtractedImagesSkipsBadPayloads(t *testing.T) {
	result := AnalysisResult{Images: []ImageItem{
		{Name: "a.png", Content: base64.StdEncoding.EncodeToString([]byte("img")), MimeType: "image/png"},
		{Name: "bad.png", Content: "%%% not base64 %%%"},
		{Content: base64.StdEncoding.EncodeToString([]byte("other"))},
	}}

	images := result.ExtractedImages()
	require.Len(t, images, 2)
	assert.Equal(t, "a.png", images[0].Filename)
	assert.Equal(t, []byte("img"), images[0].Data)
	assert.NotEmpty(t, images[1].Filename)
	assert.Equal(t, "image/png", images[1].MimeType)
}
