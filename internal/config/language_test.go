package config

import "testing"

func TestNormalizeLanguage(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "eng"},
		{"en", "eng"},
		{"EN", "eng"},
		{"de", "deu"},
		{"zh", "cmn"},
		{"ja", "jpn"},
		{"eng", "eng"},
		{"deu", "deu"},
		{"xx", "eng"},    // unknown two-letter code
		{"qqq", "qqq"},   // three-letter codes pass through
		{"en-US", "eng"}, // BCP 47 reduced to base
		{"pt-BR", "por"},
		{"not a code", "eng"},
	}

	for _, tc := range cases {
		if got := NormalizeLanguage(tc.in); got != tc.want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
