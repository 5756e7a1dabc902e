// Package nlu classifies query intent and extracts region/condition entities
// from normalized message text using the ordered vocabularies in vocab.
package nlu

import (
	"strings"

	"github.com/arogyamitra/arogya-bot/internal/vocab"
)

// Intent is the closed classification of a query's purpose.
type Intent string

const (
	IntentEmergency     Intent = "emergency"
	IntentSymptomCheck  Intent = "symptom_check"
	IntentDataOrGeneral Intent = "data_or_general"
)

// ClassifyIntent categorizes normalized text by testing keyword sets in
// fixed priority order: emergency first, then symptoms. A message matching
// both sets is classified as an emergency. Matching is case-insensitive
// substring containment, not tokenized word match.
func ClassifyIntent(text string) Intent {
	text = strings.ToLower(text)

	if containsAny(text, vocab.EmergencyKeywords) {
		return IntentEmergency
	}

	if containsAny(text, vocab.SymptomKeywords) {
		return IntentSymptomCheck
	}

	return IntentDataOrGeneral
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}

	return false
}
