package theme

import (
	"regexp"
	"sort"
)

// EvaluateRules selects the conditional override for a notification.
//
// Semantics: candidate rules are ordered by ascending priority (a lower value
// evaluates first), ties broken by document order; the first rule whose
// present conditions all match wins outright. Matched rules are never merged.
// A rule with no conditions set matches everything.
func EvaluateRules(t *HyperTheme, pkg, title, text string, external map[string]string) *ThemeRule {
	if t == nil || len(t.Rules) == 0 {
		return nil
	}

	ordered := make([]*ThemeRule, 0, len(t.Rules))
	for i := range t.Rules {
		ordered = append(ordered, &t.Rules[i])
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})

	for _, rule := range ordered {
		if ruleMatches(rule, pkg, title, text, external) {
			return rule
		}
	}
	return nil
}

func ruleMatches(rule *ThemeRule, pkg, title, text string, external map[string]string) bool {
	c := rule.Conditions

	if c.PackageName != nil && *c.PackageName != pkg {
		return false
	}
	if c.TitleRegex != nil && !regexMatches(*c.TitleRegex, title) {
		return false
	}
	if c.TextRegex != nil && !regexMatches(*c.TextRegex, text) {
		return false
	}
	if c.ExternalStateKey != nil {
		value, ok := external[*c.ExternalStateKey]
		if !ok {
			return false
		}
		if c.ExternalStateValue != nil && value != *c.ExternalStateValue {
			return false
		}
	}
	return true
}

// regexMatches treats an uncompilable pattern as a failed condition rather
// than an error.
func regexMatches(pattern, input string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(input)
}
