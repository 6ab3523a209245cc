package extract

import "strings"

// Semantic roles a sheet column can play for rule extraction.
const (
	roleTitle    = "title"
	roleContent  = "content"
	roleRuleType = "rule_type"
	roleSeverity = "severity"
	roleCategory = "category"
)

// columnAliases maps each semantic role to known header spellings, most
// specific first. Specific aliases are tried across all columns before
// generic ones, so a generic spelling like "rule" cannot shadow a
// better match elsewhere in the header row.
var columnAliases = map[string][]string{
	roleTitle:    {"rule title", "rule name", "title", "name", "rule id", "rule", "id"},
	roleContent:  {"rule content", "rule text", "content", "description", "requirement", "text", "rule"},
	roleRuleType: {"rule type", "type", "classification", "category"},
	roleSeverity: {"severity", "priority", "importance", "criticality"},
	roleCategory: {"category", "group", "area", "domain"},
}

var roleOrder = []string{roleTitle, roleContent, roleRuleType, roleSeverity, roleCategory}

// DetectColumnMapping maps normalized sheet headers to semantic roles.
// Headers must already be lower-cased by the caller. For each role the
// aliases are tried in order and the first column matching an alias
// (equality or substring) wins; roles without a matching column are
// absent from the result.
func DetectColumnMapping(headers []string) map[string]int {
	mapping := make(map[string]int)

	for _, role := range roleOrder {
	aliases:
		for _, alias := range columnAliases[role] {
			for idx, header := range headers {
				header = strings.TrimSpace(header)
				if header == "" {
					continue
				}
				if header == alias || strings.Contains(header, alias) {
					mapping[role] = idx
					break aliases
				}
			}
		}
	}

	return mapping
}
