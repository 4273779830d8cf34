// Package suggestion expands short suggestion chip labels into the full
// sentence that is sent as if the user had typed it.
package suggestion

import "strings"

// Map returns the sentence for a chip label. It never fails: unknown labels
// are prefixed with "Hãy " unless they already start with it.
func Map(s string) string {
	normalized := strings.ToLower(strings.TrimSpace(s))

	if sentence, ok := phrases[normalized]; ok {
		return sentence
	}

	for _, r := range rules {
		if !r.matches(normalized) {
			continue
		}
		if r.fixed != "" {
			return r.fixed
		}
		return r.prefix + s
	}

	if strings.HasPrefix(normalized, "hãy") {
		return s
	}
	return prefixAsk + s
}

// Known reports whether s is one of the built-in chip labels.
func Known(s string) bool {
	_, ok := phrases[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

func (r rule) matches(s string) bool {
	for _, k := range r.all {
		if !strings.Contains(s, k) {
			return false
		}
	}
	if len(r.any) == 0 {
		return len(r.all) > 0
	}
	for _, k := range r.any {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
