package classifiers

import (
	"log-report/internal/models"
)

// BrowserClassifier matches a raw user agent against an ordered rule set. Every rule
// is evaluated and all matching names are returned in rule order; a pattern matches
// anywhere in the string.
//
//go:generate mockgen -source=browser_classifier.go -destination=./mocks/browser_classifier_mock.go -package=mocks
type BrowserClassifier interface {
	Classify(userAgent string) []string
	// RuleNames lists rule names in evaluation order.
	RuleNames() []string
}

type browserClassifier struct {
	rules []models.BrowserRule
}

func NewBrowserClassifier(rules []models.BrowserRule) BrowserClassifier {
	owned := make([]models.BrowserRule, len(rules))
	copy(owned, rules)
	return &browserClassifier{rules: owned}
}

func (c *browserClassifier) Classify(userAgent string) []string {
	var matched []string
	for _, rule := range c.rules {
		if rule.Matches(userAgent) {
			matched = append(matched, rule.Name)
		}
	}
	return matched
}

func (c *browserClassifier) RuleNames() []string {
	names := make([]string, len(c.rules))
	for i, rule := range c.rules {
		names[i] = rule.Name
	}
	return names
}
