package pipeline

import "strings"

// DefaultCategory is returned when no rule matches.
const DefaultCategory = "other-resources"

type categoryRule struct {
	label    string
	keywords []string
}

// Rules are evaluated in order and the first rule with any keyword present
// wins, so documents matching several groups always file under the
// earliest one.
var categoryRules = []categoryRule{
	{"child-welfare-manuals", []string{
		"manual", "adoption", "assessment", "intake", "permanency",
		"in-home", "icpc", "purpose", "prevention", "cross-functions",
	}},
	{"child-welfare-appendices", []string{
		"appendix", "funding", "pregnancy", "case-record",
		"best-practice", "data-collection",
	}},
	{"child-welfare-practice-resources", []string{
		"practice", "resource", "guidance", "safety",
		"discipline", "substance", "firearm",
	}},
	{"safe-sleep-resources", []string{
		"safe sleep", "safesleep", "sids", "sleep-comic",
	}},
	{"disaster-preparedness", []string{
		"disaster", "attestation",
	}},
	{"path-sdm-tools-manuals", []string{
		"screening", "risk-assessment", "sdm", "path", "tool",
	}},
	{"administrative-manuals", []string{
		"administrative", "dss-admin", "admin",
	}},
}

// Categorize maps a discovered link onto one of the fixed category labels.
// All three inputs are folded into one lower-case string and matched as
// substrings; the function is pure and total.
func Categorize(linkText, linkURL, nearbyText string) string {
	text := strings.ToLower(linkText + " " + linkURL + " " + nearbyText)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.label
			}
		}
	}
	return DefaultCategory
}

// Categories lists every label Categorize can return, in rule order.
func Categories() []string {
	labels := make([]string, 0, len(categoryRules)+1)
	for _, rule := range categoryRules {
		labels = append(labels, rule.label)
	}
	return append(labels, DefaultCategory)
}
