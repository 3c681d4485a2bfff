package security

import "testing"

func TestCheckFieldForInjection(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"classic tautology", "' OR 1=1 --", true},
		{"union select", "1 UNION SELECT password FROM users", true},
		{"plain message", "Excited to learn more about your seed round!", false},
		{"empty", "", false},
		{"apostrophe prose", "We're impressed by the team's traction", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckFieldForInjection("message", tt.value)
			if got := result != nil; got != tt.want {
				t.Errorf("CheckFieldForInjection(%q) detected=%v, want %v", tt.value, got, tt.want)
			}
			if result != nil && result.FieldName != "message" {
				t.Errorf("FieldName = %q", result.FieldName)
			}
			if result != nil && result.Fingerprint == "" {
				t.Error("expected a fingerprint for a detected pattern")
			}
		})
	}
}

func TestCheckFields(t *testing.T) {
	results := CheckFields(map[string]string{
		"message": "' OR 1=1 --",
		"name":    "Sarah Chen",
	})

	if len(results) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(results))
	}
	if results[0].FieldName != "message" {
		t.Errorf("FieldName = %q", results[0].FieldName)
	}
}
