package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/esdguide/ruletracker/constants"
	"github.com/esdguide/ruletracker/internal/entity"
)

// sheet names containing any of these are scanned for rules
var ruleSheetKeywords = []string{"rule", "esd", "latchup", "guideline"}

var imageMimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".tiff": "image/tiff",
	".emf":  "image/emf",
	".wmf":  "image/wmf",
}

// TabularExtractor recovers rules from spreadsheet documents. Rows are
// mapped to candidates through header alias detection; rows missing a
// required field are skipped silently.
type TabularExtractor struct {
	file *excelize.File
}

func NewTabularExtractor(content []byte) (*TabularExtractor, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &TabularExtractor{file: f}, nil
}

func (e *TabularExtractor) ExtractRules(ctx context.Context) ([]entity.ExtractedRule, error) {
	var rules []entity.ExtractedRule

	for _, sheet := range e.file.GetSheetList() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !isRuleSheet(sheet) {
			continue
		}

		rows, err := e.file.GetRows(sheet)
		if err != nil || len(rows) < 2 {
			// unreadable or headers-only sheets contribute nothing
			continue
		}

		headers := make([]string, len(rows[0]))
		for i, h := range rows[0] {
			headers[i] = strings.ToLower(strings.TrimSpace(h))
		}

		mapping := DetectColumnMapping(headers)
		if _, ok := mapping[roleTitle]; !ok {
			continue
		}
		if _, ok := mapping[roleContent]; !ok {
			continue
		}

		for _, row := range rows[1:] {
			if rule, ok := ruleFromRow(row, mapping); ok {
				rules = append(rules, rule)
			}
		}
	}

	return rules, nil
}

func isRuleSheet(name string) bool {
	lowered := strings.ToLower(name)
	for _, keyword := range ruleSheetKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// ruleFromRow builds a candidate from a sheet row. Both title and
// content must be present; all other roles are optional.
func ruleFromRow(row []string, mapping map[string]int) (entity.ExtractedRule, bool) {
	cell := func(role string) string {
		idx, ok := mapping[role]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	title := cell(roleTitle)
	content := cell(roleContent)
	if title == "" || content == "" {
		return entity.ExtractedRule{}, false
	}

	rule := entity.ExtractedRule{
		Title:    title,
		Content:  content,
		Category: cell(roleCategory),
	}

	if raw := cell(roleSeverity); raw != "" {
		rule.Severity = string(constants.CanonicalSeverity(raw))
	}
	if raw := cell(roleRuleType); raw != "" {
		ruleType, _ := constants.CanonicalRuleType(raw)
		rule.RuleType = string(ruleType)
	} else {
		rule.RuleType = string(ClassifyRuleType(title, content))
	}

	return rule, true
}

func (e *TabularExtractor) ExtractMetadata(ctx context.Context) (map[string]any, error) {
	metadata := map[string]any{}

	if props, err := e.file.GetDocProps(); err == nil && props != nil {
		if props.Title != "" {
			metadata["title"] = props.Title
		}
		if props.Subject != "" {
			metadata["subject"] = props.Subject
		}
		if props.Creator != "" {
			metadata["author"] = props.Creator
		}
		if props.Created != "" {
			metadata["created"] = props.Created
		}
		if props.Modified != "" {
			metadata["modified"] = props.Modified
		}
	}

	metadata["sheets"] = e.file.GetSheetList()
	return metadata, nil
}

func (e *TabularExtractor) ExtractImages(ctx context.Context) ([]entity.ExtractedImage, error) {
	var images []entity.ExtractedImage

	for _, sheet := range e.file.GetSheetList() {
		cells, err := e.file.GetPictureCells(sheet)
		if err != nil {
			continue
		}
		count := 0
		for _, cellRef := range cells {
			pics, err := e.file.GetPictures(sheet, cellRef)
			if err != nil {
				continue
			}
			for _, pic := range pics {
				if len(pic.File) == 0 {
					continue
				}
				ext := strings.ToLower(pic.Extension)
				images = append(images, entity.ExtractedImage{
					Filename: fmt.Sprintf("image_%s_%d%s", sheet, count, ext),
					Data:     pic.File,
					MimeType: mimeForExtension(ext),
				})
				count++
			}
		}
	}

	return images, nil
}

func mimeForExtension(ext string) string {
	if mime, ok := imageMimeTypes[ext]; ok {
		return mime
	}
	return "image/png"
}

// Close releases resources held by the underlying workbook.
func (e *TabularExtractor) Close() error {
	return e.file.Close()
}
