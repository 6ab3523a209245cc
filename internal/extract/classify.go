package extract

import (
	"strings"

	"github.com/esdguide/ruletracker/constants"
)

var latchupTokens = []string{"latchup", "latch-up", "latch up"}

// ClassifyRuleType tags a candidate by its combined title and body
// text. Priority order is fixed: ESD beats latchup when both topics
// appear. The classifier is pure and produces no confidence score.
func ClassifyRuleType(title, content string) constants.RuleType {
	combined := strings.ToLower(title + " " + content)

	if strings.Contains(combined, "esd") {
		return constants.RuleTypeESD
	}
	for _, token := range latchupTokens {
		if strings.Contains(combined, token) {
			return constants.RuleTypeLatchup
		}
	}
	return constants.RuleTypeGeneral
}
