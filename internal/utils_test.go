package internal

import "testing"

func TestDefaultLexiconName(t *testing.T) {
	tests := []struct {
		src, trg string
		want     string
	}{
		{"eng", "deu", "eng2deu.txt"},
		{"eng", "../etc", "eng2___etc.txt"},
		{"", "", "2.txt"},
	}

	for _, tt := range tests {
		if got := DefaultLexiconName(tt.src, tt.trg); got != tt.want {
			t.Errorf("DefaultLexiconName(%q, %q) = %q, want %q", tt.src, tt.trg, got, tt.want)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"simple", "simple"},
		{"with space", "with_space"},
		{"dash-and_underscore", "dash-and_underscore"},
		{"a/b\\c", "a_b_c"},
		{"ümlaut", "_mlaut"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
