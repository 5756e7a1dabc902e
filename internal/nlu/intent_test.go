package nlu

import "testing"

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{
			name: "emergency keyword",
			text: "emergency helpline telangana",
			want: IntentEmergency,
		},
		{
			name: "symptom keyword",
			text: "i have fever in kerala",
			want: IntentSymptomCheck,
		},
		{
			name: "no keyword",
			text: "covid cases in maharashtra",
			want: IntentDataOrGeneral,
		},
		{
			name: "emergency wins over symptom",
			text: "high fever and chest pain, need ambulance",
			want: IntentEmergency,
		},
		{
			name: "substring containment not word match",
			text: "feeling feverish today",
			want: IntentSymptomCheck,
		},
		{
			name: "mixed case input",
			text: "EMERGENCY in Delhi",
			want: IntentEmergency,
		},
		{
			name: "empty text",
			text: "",
			want: IntentDataOrGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyIntent(tt.text); got != tt.want {
				t.Errorf("ClassifyIntent(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// Any text containing keywords from both sets must classify as emergency:
// priority is positional, not semantic.
func TestClassifyIntentPriority(t *testing.T) {
	both := []string{
		"fever and bleeding",
		"urgent cough problem",
		"headache after accident",
	}

	for _, text := range both {
		if got := ClassifyIntent(text); got != IntentEmergency {
			t.Errorf("ClassifyIntent(%q) = %q, want %q", text, got, IntentEmergency)
		}
	}
}
