package nlu

import (
	"strings"

	"github.com/arogyamitra/arogya-bot/internal/vocab"
)

// Entities are the region and condition found in a query. Empty string means
// absent.
type Entities struct {
	Region    string
	Condition string
}

// ExtractEntities scans the ordered region and condition lists and returns
// the first list entry contained in the text for each. First-match-in-order
// is deliberate: overlapping vocabulary entries (such as a base name and a
// suffixed variant) are prioritized by their position in vocab, not by
// match length.
func ExtractEntities(text string) Entities {
	text = strings.ToLower(text)

	return Entities{
		Region:    firstContained(text, vocab.Regions),
		Condition: firstContained(text, vocab.Conditions),
	}
}

func firstContained(text string, list []string) string {
	for _, entry := range list {
		if strings.Contains(text, entry) {
			return entry
		}
	}

	return ""
}
