package extract

import (
	"regexp"
	"strings"

	"github.com/esdguide/ruletracker/internal/entity"
)

// Segmentation strategies for flow text, ordered most to least
// explicit. Each strategy is only tried when the previous one found
// zero candidates.
var (
	// "Rule 4: Pad ring continuity" style markers.
	ruleMarkerRe = regexp.MustCompile(`Rule\s+(\d+):?[ \t]+(.+)`)
	// "3.2 Power Clamp Sizing" style decimal section headings.
	sectionHeadingRe = regexp.MustCompile(`(\d+\.\d+)[ \t]+(.+)`)
	// Generic "leading integer + rest of line" headings; noisy, so the
	// results are filtered by title and body length.
	numberedLineRe = regexp.MustCompile(`(?m)^(\d+[ \t]+\S.*)$`)
)

const (
	maxHeuristicTitleLen = 100
	minHeuristicBodyLen  = 20
)

// SegmentText splits unstructured prose into candidate rules using the
// ordered fallback chain. An empty result means the text contained
// nothing rule-like; it is never an error.
func SegmentText(text string) []entity.ExtractedRule {
	if rules := segmentByRuleMarkers(text); len(rules) > 0 {
		return rules
	}
	if rules := segmentBySectionHeadings(text); len(rules) > 0 {
		return rules
	}
	return segmentByNumberedLines(text)
}

func segmentByRuleMarkers(text string) []entity.ExtractedRule {
	var rules []entity.ExtractedRule

	matches := ruleMarkerRe.FindAllStringSubmatchIndex(text, -1)
	for i, m := range matches {
		number := text[m[2]:m[3]]
		title := strings.TrimSpace(text[m[4]:m[5]])
		body := bodyBetween(text, m[1], matches, i)
		if title == "" || body == "" {
			continue
		}
		rules = append(rules, makeCandidate("Rule "+number+": "+title, body))
	}

	return rules
}

func segmentBySectionHeadings(text string) []entity.ExtractedRule {
	var rules []entity.ExtractedRule

	matches := sectionHeadingRe.FindAllStringSubmatchIndex(text, -1)
	for i, m := range matches {
		number := text[m[2]:m[3]]
		title := strings.TrimSpace(text[m[4]:m[5]])
		body := bodyBetween(text, m[1], matches, i)
		if title == "" || body == "" {
			continue
		}
		rules = append(rules, makeCandidate(number+" "+title, body))
	}

	return rules
}

func segmentByNumberedLines(text string) []entity.ExtractedRule {
	var rules []entity.ExtractedRule

	matches := numberedLineRe.FindAllStringSubmatchIndex(text, -1)
	for i, m := range matches {
		title := strings.TrimSpace(text[m[2]:m[3]])
		body := bodyBetween(text, m[1], matches, i)
		// reject noise: long "titles" and trivial bodies are not rules
		if len(title) >= maxHeuristicTitleLen || len(body) <= minHeuristicBodyLen {
			continue
		}
		rules = append(rules, makeCandidate(title, body))
	}

	return rules
}

// bodyBetween captures the text from the end of match i up to the
// start of the next match (or end of input).
func bodyBetween(text string, end int, matches [][]int, i int) string {
	next := len(text)
	if i+1 < len(matches) {
		next = matches[i+1][0]
	}
	return strings.TrimSpace(text[end:next])
}

func makeCandidate(title, body string) entity.ExtractedRule {
	return entity.ExtractedRule{
		Title:    title,
		Content:  body,
		RuleType: string(ClassifyRuleType(title, body)),
	}
}
