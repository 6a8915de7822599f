package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Ravi Kumar", "Ravi Kumar"},
		{"leading and trailing", "  Ravi Kumar  ", "Ravi Kumar"},
		{"internal runs", "Ravi \t\n Kumar", "Ravi Kumar"},
		{"empty", "", ""},
		{"only whitespace", " \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeEmail(t *testing.T) {
	if got := SanitizeEmail("  Guest@Example.COM "); got != "guest@example.com" {
		t.Errorf("expected lowercased trimmed email, got %q", got)
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"already e164 india", "+919876543210", "+919876543210"},
		{"national india", "9876543210", "+919876543210"},
		{"us with punctuation", "+1 (212) 555-0123", "+12125550123"},
		{"garbage kept as-is", "not-a-phone", "not-a-phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.input); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
