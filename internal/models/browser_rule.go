package models

import "regexp"

// BrowserRule classifies a raw user agent as Name when Pattern is found anywhere in it
// and Exclude, if set, is not.
type BrowserRule struct {
	Name    string
	Pattern *regexp.Regexp
	Exclude *regexp.Regexp
}

// Matches reports whether the rule accepts userAgent.
func (r BrowserRule) Matches(userAgent string) bool {
	if !r.Pattern.MatchString(userAgent) {
		return false
	}
	return r.Exclude == nil || !r.Exclude.MatchString(userAgent)
}
