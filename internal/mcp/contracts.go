package mcp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/esdguide/ruletracker/constants"
	"github.com/esdguide/ruletracker/internal/entity"
)

// Analyzer is the interface the pipeline depends on.
type Analyzer interface {
	Ping(ctx context.Context) error
	AnalyzeDocument(ctx context.Context, name string, format constants.DocumentFormat, content []byte) (*AnalysisResult, error)
}

// analyzeRequest is the wire shape of POST /analyze.
type analyzeRequest struct {
	Document     analyzeDocument `json:"document"`
	AnalysisType string          `json:"analysis_type"`
	Options      analyzeOptions  `json:"options"`
}

type analyzeDocument struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content string `json:"content"` // base64
}

type analyzeOptions struct {
	ExtractRules      bool `json:"extract_rules"`
	ExtractMetadata   bool `json:"extract_metadata"`
	ExtractImages     bool `json:"extract_images"`
	UseAdvancedModels bool `json:"use_advanced_models"`
}

// analyzeAccepted is the 202 response carrying a task handle.
type analyzeAccepted struct {
	TaskID string `json:"task_id"`
}

// taskStatus is the GET /tasks/{id} response. The result payload stays
// raw so it can be schema-validated before decoding, like an inline
// response.
type taskStatus struct {
	Status string          `json:"status"` // processing | completed | failed
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// AnalysisResult is the analysis service's extraction payload.
type AnalysisResult struct {
	Rules    []RuleItem     `json:"rules"`
	Metadata map[string]any `json:"metadata"`
	Images   []ImageItem    `json:"images"`
}

// RuleItem is one extracted rule as reported by the service.
type RuleItem struct {
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Type       string  `json:"type"`
	Severity   string  `json:"severity"`
	Category   string  `json:"category"`
	Confidence float32 `json:"confidence"`
}

// ImageItem is one extracted image as reported by the service.
type ImageItem struct {
	Name        string `json:"name"`
	Content     string `json:"content"` // base64
	MimeType    string `json:"mime_type"`
	Description string `json:"description"`
}

// Candidates converts the service payload into extraction candidates,
// normalizing rule type casing and severity on the way in. Image
// entries with undecodable content are skipped.
func (r *AnalysisResult) Candidates() []entity.ExtractedRule {
	rules := make([]entity.ExtractedRule, 0, len(r.Rules))
	for _, item := range r.Rules {
		ruleType, _ := constants.CanonicalRuleType(item.Type)
		rules = append(rules, entity.ExtractedRule{
			Title:      item.Title,
			Content:    item.Content,
			RuleType:   string(ruleType),
			Severity:   string(constants.CanonicalSeverity(item.Severity)),
			Category:   item.Category,
			Confidence: item.Confidence,
		})
	}
	return rules
}

// ExtractedImages decodes the base64 image payloads.
func (r *AnalysisResult) ExtractedImages() []entity.ExtractedImage {
	images := make([]entity.ExtractedImage, 0, len(r.Images))
	for i, item := range r.Images {
		data, err := base64.StdEncoding.DecodeString(item.Content)
		if err != nil || len(data) == 0 {
			continue
		}
		name := item.Name
		if name == "" {
			name = fmt.Sprintf("image_%d.png", i)
		}
		mime := item.MimeType
		if mime == "" {
			mime = "image/png"
		}
		images = append(images, entity.ExtractedImage{
			Filename:    name,
			Data:        data,
			MimeType:    mime,
			Description: item.Description,
		})
	}
	return images
}
