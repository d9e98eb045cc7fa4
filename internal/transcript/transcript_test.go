package transcript

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"segalign/internal/pipeline"
)

func TestParse_Valid(t *testing.T) {
	data := []byte(`{
		"language_code": "de",
		"words": [
			{"text": "Hallo", "start": 0.0, "end": 0.5, "speaker_id": "spk_0"},
			{"text": "Welt.", "start": 0.5, "end": 1.0, "speaker_id": "spk_0"}
		]
	}`)

	tr, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tr.LanguageCode != "de" {
		t.Errorf("LanguageCode = %q, want 'de'", tr.LanguageCode)
	}
	if len(tr.Words) != 2 {
		t.Fatalf("len(Words) = %d, want 2", len(tr.Words))
	}
	if tr.Words[1].Text != "Welt." || tr.Words[1].Start != 0.5 {
		t.Errorf("unexpected word: %+v", tr.Words[1])
	}
}

func TestParse_MissingWords(t *testing.T) {
	_, err := Parse([]byte(`{"language_code": "en"}`))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(verr.Msg, "words") {
		t.Errorf("error should name the missing field: %q", verr.Msg)
	}
}

func TestParse_EmptyWordsListIsValid(t *testing.T) {
	tr, err := Parse([]byte(`{"words": []}`))
	if err != nil {
		t.Fatalf("empty word list is not a validation failure: %v", err)
	}
	if len(tr.Words) != 0 {
		t.Errorf("len(Words) = %d, want 0", len(tr.Words))
	}
}

func TestParse_MissingRequiredField(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"start", `{"words":[{"text":"hi","end":1.0,"speaker_id":"A"}]}`},
		{"end", `{"words":[{"text":"hi","start":0.0,"speaker_id":"A"}]}`},
		{"text", `{"words":[{"start":0.0,"end":1.0,"speaker_id":"A"}]}`},
		{"speaker_id", `{"words":[{"text":"hi","start":0.0,"end":1.0}]}`},
	}

	for _, tc := range cases {
		_, err := Parse([]byte(tc.body))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: expected ValidationError, got %v", tc.name, err)
			continue
		}
		if !strings.Contains(verr.Msg, tc.name) {
			t.Errorf("%s: error should name the field, got %q", tc.name, verr.Msg)
		}
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{garbage`))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for malformed JSON, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transcription.json")
	body := `{"words":[{"text":"Hi.","start":0.0,"end":0.4,"speaker_id":"A"}]}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	tr, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tr.Words) != 1 {
		t.Errorf("len(Words) = %d, want 1", len(tr.Words))
	}

	if _, err := Load(filepath.Join(dir, "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNormalizeSpeakerID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"speaker_0", "Speaker 1"}, // zero-based shifts up
		{"speaker_1", "Speaker 2"},
		{"spk_2", "Speaker 2"},
		{"SPEAKER 3", "Speaker 3"},
		{"spk0", "Speaker 1"}, // zero without the 0-based prefix
		{"Bob", "Speaker 1"},  // no number at all
		{"", "Speaker 1"},
	}
	for _, tc := range cases {
		if got := NormalizeSpeakerID(tc.in); got != tc.want {
			t.Errorf("NormalizeSpeakerID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeSpeakerIDs_CopiesInput(t *testing.T) {
	in := []pipeline.Word{
		{Text: "hi", Start: 0, End: 0.5, SpeakerID: "speaker_0"},
	}

	out := NormalizeSpeakerIDs(in)
	if out[0].SpeakerID != "Speaker 1" {
		t.Errorf("SpeakerID = %q, want 'Speaker 1'", out[0].SpeakerID)
	}
	if in[0].SpeakerID != "speaker_0" {
		t.Error("input slice was mutated")
	}
}
