package srt

import (
	"strings"
	"testing"

	"segalign/internal/pipeline"
)

func TestFormatTime(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00,000"},
		{1.5, "00:00:01,500"},
		{61.25, "00:01:01,250"},
		{3661.0, "01:01:01,000"},
		{7322.5, "02:02:02,500"},
	}
	for _, tc := range cases {
		if got := FormatTime(tc.seconds); got != tc.want {
			t.Errorf("FormatTime(%f) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestRender(t *testing.T) {
	records := []pipeline.Record{
		{Speaker: "Speaker 1", Start: 0.0, End: 1.5, Text: "Hello world."},
		{Speaker: "Speaker 2", Start: 2.0, End: 3.0, Text: "How are you?"},
	}

	out := Render(records, false)

	if !strings.HasPrefix(out, "1\n00:00:00,000 --> 00:00:01,500\n") {
		t.Errorf("unexpected first cue header:\n%s", out)
	}
	if !strings.Contains(out, "[Speaker 1] Hello world.\n") {
		t.Errorf("missing labeled first cue text:\n%s", out)
	}
	if !strings.Contains(out, "\n2\n00:00:02,000 --> 00:00:03,000\n") {
		t.Errorf("missing second cue header:\n%s", out)
	}
	if !strings.HasSuffix(out, "How are you?\n\n") {
		t.Errorf("cues must be blank-line terminated:\n%s", out)
	}
}

func TestRender_SpeakerBrackets(t *testing.T) {
	records := []pipeline.Record{
		{Speaker: "Speaker 1", Start: 0.0, End: 1.0, Text: "Hi."},
	}

	out := Render(records, true)
	if !strings.Contains(out, "- [Speaker 1] Hi.") {
		t.Errorf("expected '- [Speaker 1]' prefix:\n%s", out)
	}
}

func TestRender_Empty(t *testing.T) {
	if out := Render(nil, false); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}
