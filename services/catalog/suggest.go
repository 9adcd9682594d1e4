package catalog

import (
	"strings"

	"nestly/models"
)

// minSuggestionInput is the shortest trimmed comment that drives keyword
// matching. Shorter strings produce too many false positives.
const minSuggestionInput = 3

// SuggestAddOns proposes add-ons for a service by matching the free-text
// comment against each catalog add-on's trigger keywords. Matches come
// back in catalog order, deduplicated. The function is pure; the caller
// owns the debounce on keystroke-driven input.
func SuggestAddOns(serviceID string, freeText string) []models.AddOn {
	text := strings.ToLower(strings.TrimSpace(freeText))
	if len(text) < minSuggestionInput {
		return nil
	}

	var matches []models.AddOn
	seen := make(map[string]bool)
	for _, addOn := range GetAddOns(serviceID) {
		if seen[addOn.ID] {
			continue
		}
		for _, kw := range addOn.Keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				matches = append(matches, addOn)
				seen[addOn.ID] = true
				break
			}
		}
	}
	return matches
}
