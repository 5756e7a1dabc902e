package nlu

import "testing"

func TestExtractEntities(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		wantRegion    string
		wantCondition string
	}{
		{
			name:          "region and condition",
			text:          "dengue cases in kerala",
			wantRegion:    "kerala",
			wantCondition: "dengue",
		},
		{
			name:       "region only",
			text:       "what is the situation in telangana",
			wantRegion: "telangana",
		},
		{
			name:          "condition only",
			text:          "how does malaria spread",
			wantCondition: "malaria",
		},
		{
			name: "neither",
			text: "how do vaccines work",
		},
		{
			name:          "case insensitive",
			text:          "COVID-19 update for Tamil Nadu",
			wantRegion:    "tamil nadu",
			wantCondition: "covid-19",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractEntities(tt.text)
			if got.Region != tt.wantRegion {
				t.Errorf("region: got %q, want %q", got.Region, tt.wantRegion)
			}

			if got.Condition != tt.wantCondition {
				t.Errorf("condition: got %q, want %q", got.Condition, tt.wantCondition)
			}
		})
	}
}

// The suffixed variant precedes the base name in the condition list, so it
// wins when both are present; the bare base name still matches on its own.
func TestExtractEntitiesListOrderPriority(t *testing.T) {
	got := ExtractEntities("covid-19 numbers please")
	if got.Condition != "covid-19" {
		t.Errorf("condition: got %q, want %q", got.Condition, "covid-19")
	}

	got = ExtractEntities("covid numbers please")
	if got.Condition != "covid" {
		t.Errorf("condition: got %q, want %q", got.Condition, "covid")
	}
}

// First list entry wins even when a later entry would also match.
func TestExtractEntitiesFirstMatch(t *testing.T) {
	got := ExtractEntities("travelling from delhi to kerala")
	if got.Region != "delhi" {
		t.Errorf("region: got %q, want %q", got.Region, "delhi")
	}
}
