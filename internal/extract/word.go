package extract

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/unidoc/unioffice/document"

	"github.com/esdguide/ruletracker/internal/entity"
)

var titlePrefixRe = regexp.MustCompile(`^(Rule\s+\d+|\d+\.\d+|\d+\.)\s+`)

const maxParagraphTitleLen = 150

// WordExtractor recovers rules from word-processor documents. It first
// walks paragraphs with a style-aware accumulation pass; when that
// yields nothing it falls back to the text segmentation chain. Only
// OOXML (.docx) input is readable; legacy .doc surfaces as an
// unreadable-document failure.
type WordExtractor struct {
	doc *document.Document
}

func NewWordExtractor(content []byte) (*WordExtractor, error) {
	doc, err := document.Read(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	return &WordExtractor{doc: doc}, nil
}

func (e *WordExtractor) ExtractRules(ctx context.Context) ([]entity.ExtractedRule, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	paragraphs := e.doc.Paragraphs()
	rules := rulesFromParagraphStyles(paragraphs)
	if len(rules) > 0 {
		return rules, nil
	}

	// style pass found nothing; retry on the concatenated text
	var b strings.Builder
	for _, p := range paragraphs {
		b.WriteString(paragraphText(p))
		b.WriteString("\n")
	}
	return SegmentText(b.String()), nil
}

// rulesFromParagraphStyles accumulates paragraphs into candidates: a
// title paragraph opens a candidate, subsequent non-heading paragraphs
// extend its body until the next title. Candidates without a body are
// dropped.
func rulesFromParagraphStyles(paragraphs []document.Paragraph) []entity.ExtractedRule {
	var rules []entity.ExtractedRule
	var current *entity.ExtractedRule

	flush := func() {
		if current != nil && current.Content != "" {
			current.RuleType = string(ClassifyRuleType(current.Title, current.Content))
			rules = append(rules, *current)
		}
		current = nil
	}

	for _, p := range paragraphs {
		text := strings.TrimSpace(paragraphText(p))
		if text == "" {
			continue
		}

		switch {
		case isTitleParagraph(p, text):
			flush()
			current = &entity.ExtractedRule{Title: text}
		case current != nil && !isHeadingStyle(p):
			if current.Content != "" {
				current.Content += "\n\n" + text
			} else {
				current.Content = text
			}
		}
	}
	flush()

	return rules
}

// isTitleParagraph judges whether a paragraph opens a new candidate: it
// must be reasonably short and either carry a heading style, contain a
// bold run, or match a rule-number prefix.
func isTitleParagraph(p document.Paragraph, text string) bool {
	if len(text) >= maxParagraphTitleLen {
		return false
	}
	return isHeadingStyle(p) || hasBoldRun(p) || titlePrefixRe.MatchString(text)
}

func isHeadingStyle(p document.Paragraph) bool {
	return strings.HasPrefix(p.Style(), "Heading")
}

func hasBoldRun(p document.Paragraph) bool {
	for _, run := range p.Runs() {
		if rpr := run.X().RPr; rpr != nil && rpr.B != nil {
			return true
		}
	}
	return false
}

func paragraphText(p document.Paragraph) string {
	var b strings.Builder
	for _, run := range p.Runs() {
		b.WriteString(run.Text())
	}
	return b.String()
}

func (e *WordExtractor) ExtractMetadata(ctx context.Context) (map[string]any, error) {
	metadata := map[string]any{}

	props := e.doc.CoreProperties
	if title := props.Title(); title != "" {
		metadata["title"] = title
	}
	if author := props.Author(); author != "" {
		metadata["author"] = author
	}
	if created := props.Created(); !created.IsZero() {
		metadata["created"] = created
	}
	if modified := props.Modified(); !modified.IsZero() {
		metadata["modified"] = modified
	}
	metadata["paragraphs"] = len(e.doc.Paragraphs())

	return metadata, nil
}

func (e *WordExtractor) ExtractImages(ctx context.Context) ([]entity.ExtractedImage, error) {
	var images []entity.ExtractedImage

	for i, ref := range e.doc.Images {
		data, err := os.ReadFile(ref.Path())
		if err != nil || len(data) == 0 {
			// skip image parts that cannot be read
			continue
		}
		ext := "." + strings.ToLower(ref.Format())
		images = append(images, entity.ExtractedImage{
			Filename: fmt.Sprintf("image_%d%s", i, ext),
			Data:     data,
			MimeType: mimeForExtension(ext),
		})
	}

	return images, nil
}
