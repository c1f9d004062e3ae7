package testutil

import "testing"

func TestStripAnsiCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no codes", "plain text", "plain text"},
		{"color code", "\x1b[32mgreen\x1b[0m", "green"},
		{"256 color code", "\x1b[38;5;39mblue\x1b[0m", "blue"},
		{"bold", "\x1b[1mbold\x1b[0m", "bold"},
		{"empty string", "", ""},
		{"codes only", "\x1b[1m\x1b[0m", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripAnsiCodes(tt.input); got != tt.want {
				t.Errorf("StripAnsiCodes(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
