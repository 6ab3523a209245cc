package constants

import "strings"

// RuleType is the canonical rule category stored on rules and
// extraction candidates. Values are stored lower-case; Canonicalize
// is the single place that normalizes upstream casing.
type RuleType string

const (
	RuleTypeESD     RuleType = "esd"
	RuleTypeLatchup RuleType = "latchup"
	RuleTypeGeneral RuleType = "general"
)

var allRuleTypes = []RuleType{RuleTypeESD, RuleTypeLatchup, RuleTypeGeneral}

// RuleTypeValues returns the allowed rule type strings.
func RuleTypeValues() []string {
	result := make([]string, len(allRuleTypes))
	for i, rt := range allRuleTypes {
		result[i] = string(rt)
	}
	return result
}

// CanonicalRuleType normalizes a free-form rule type tag. The second
// return reports whether the input mapped onto a known type rather
// than defaulting to general.
func CanonicalRuleType(input string) (RuleType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return RuleTypeGeneral, false
	}
	if strings.Contains(normalized, "esd") {
		return RuleTypeESD, true
	}
	if strings.Contains(normalized, "latchup") || strings.Contains(normalized, "latch-up") || strings.Contains(normalized, "latch up") {
		return RuleTypeLatchup, true
	}
	if normalized == string(RuleTypeGeneral) {
		return RuleTypeGeneral, true
	}
	return RuleTypeGeneral, false
}
