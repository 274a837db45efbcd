package textproc

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases",
			input: "Leaking TAP",
			want:  "leaking tap",
		},
		{
			name:  "strips punctuation",
			input: "WiFi's not working!!! (room 12-B)",
			want:  "wifi s not working room 12 b",
		},
		{
			name:  "collapses whitespace",
			input: "  tap \t\n  leaking  ",
			want:  "tap leaking",
		},
		{
			name:  "keeps digits",
			input: "Block A, Room 101",
			want:  "block a room 101",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only punctuation",
			input: "?!...---",
			want:  "",
		},
		{
			name:  "non-ascii becomes space",
			input: "café über",
			want:  "caf ber",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Leaking tap in bathroom!",
		"  multiple   spaces  ",
		"MIXED case AND (symbols)",
		"",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalize_Charset(t *testing.T) {
	inputs := []string{
		"Tap's LEAKING in bathroom #3!",
		"   \t weird whitespace\n",
		"unicode: héllo wörld ✓",
	}

	for _, in := range inputs {
		got := Normalize(in)
		if got != strings.TrimSpace(got) {
			t.Errorf("Normalize(%q) has leading/trailing space: %q", in, got)
		}
		if strings.Contains(got, "  ") {
			t.Errorf("Normalize(%q) has double space: %q", in, got)
		}
		for _, r := range got {
			valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' '
			if !valid {
				t.Errorf("Normalize(%q) contains invalid rune %q", in, r)
			}
		}
	}
}

func TestJoinTitleBody(t *testing.T) {
	if got := JoinTitleBody("Leaking tap", "in bathroom"); got != "Leaking tap in bathroom" {
		t.Errorf("JoinTitleBody() = %q", got)
	}
}
