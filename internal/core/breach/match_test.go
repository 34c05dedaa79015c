package breach

import "testing"

func TestMatcher_Matches(t *testing.T) {
	fields := []string{"Boston", "Ransomware", "High"}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty query matches", "", true},
		{"lowercase prefix of location", "bos", true},
		{"uppercase query", "RANSOM", true},
		{"match in impact only", "high", true},
		{"interior substring", "omwa", true},
		{"no match", "zzz", false},
		{"query longer than any field", "Boston Ransomware", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewMatcher(tt.query).Matches(fields...); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestMatcher_CaseVariantsAgree(t *testing.T) {
	fields := []string{"New York", "Phishing", "Low"}

	upper := NewMatcher("NY").Matches(fields...)
	lower := NewMatcher("ny").Matches(fields...)
	if upper != lower {
		t.Errorf("NY matched %v but ny matched %v", upper, lower)
	}
}

func TestMatcher_UnicodeFolding(t *testing.T) {
	fields := []string{"São Paulo", "Phishing", "Medium"}

	if !NewMatcher("SÃO").Matches(fields...) {
		t.Error("expected accented uppercase query to match")
	}
}

func TestMatcher_NoFields(t *testing.T) {
	if NewMatcher("").Matches() {
		t.Error("expected no match without fields")
	}
}
