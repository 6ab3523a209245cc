package constants

import "strings"

// Severity levels used on rules. Free-form upstream values are
// normalized; unknown values fall back to medium.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityMedium   Severity = "medium"
	SeverityInfo     Severity = "info"
)

var severitySynonyms = map[string]Severity{
	"critical":  SeverityCritical,
	"high":      SeverityCritical,
	"mandatory": SeverityCritical,
	"warning":   SeverityWarning,
	"warn":      SeverityWarning,
	"medium":    SeverityMedium,
	"low":       SeverityInfo,
	"info":      SeverityInfo,
	"optional":  SeverityInfo,
}

// CanonicalSeverity maps a free-form severity tag to a stable value.
func CanonicalSeverity(input string) Severity {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if sev, ok := severitySynonyms[normalized]; ok {
		return sev
	}
	return SeverityMedium
}

func SeverityValues() []string {
	return []string{
		string(SeverityCritical),
		string(SeverityWarning),
		string(SeverityMedium),
		string(SeverityInfo),
	}
}
