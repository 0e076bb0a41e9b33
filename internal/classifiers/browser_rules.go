package classifiers

import (
	"regexp"

	"log-report/internal/models"
	"log-report/internal/shared/configs"
)

// DefaultBrowserRules returns the built-in rule set in evaluation order. Safari excludes
// agents that also mention Chrome, since Chrome agents carry a Safari token.
func DefaultBrowserRules() []models.BrowserRule {
	return []models.BrowserRule{
		{Name: "Safari", Pattern: regexp.MustCompile(`Safari`), Exclude: regexp.MustCompile(`Chrome`)},
		{Name: "Explorer", Pattern: regexp.MustCompile(`MSIE`)},
		{Name: "Firefox", Pattern: regexp.MustCompile(`Firefox`)},
		{Name: "Chrome", Pattern: regexp.MustCompile(`Chrome`)},
	}
}

// CompileBrowserRules compiles configured rules, keeping their order.
// No configured rules selects DefaultBrowserRules.
func CompileBrowserRules(ruleConfigs []configs.BrowserRuleConfig) ([]models.BrowserRule, error) {
	if len(ruleConfigs) == 0 {
		return DefaultBrowserRules(), nil
	}

	rules := make([]models.BrowserRule, 0, len(ruleConfigs))
	for _, rc := range ruleConfigs {
		pattern, err := regexp.Compile(rc.Pattern)
		if err != nil {
			return nil, errInvalidRule(rc.Name, rc.Pattern, err)
		}
		rule := models.BrowserRule{Name: rc.Name, Pattern: pattern}
		if rc.Exclude != "" {
			exclude, err := regexp.Compile(rc.Exclude)
			if err != nil {
				return nil, errInvalidRule(rc.Name, rc.Exclude, err)
			}
			rule.Exclude = exclude
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
