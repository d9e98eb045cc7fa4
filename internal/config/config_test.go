package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.BigPauseSeconds != 0.75 {
		t.Errorf("BigPauseSeconds = %f, want 0.75", s.BigPauseSeconds)
	}
	if s.MinWordsInSegment != 2 {
		t.Errorf("MinWordsInSegment = %d, want 2", s.MinWordsInSegment)
	}
	if s.MaxDuration != 15.0 {
		t.Errorf("MaxDuration = %f, want 15.0", s.MaxDuration)
	}
	if !s.FixOrphanedPunctuation {
		t.Error("FixOrphanedPunctuation should default to true")
	}
	if s.SpeakerBrackets {
		t.Error("SpeakerBrackets should default to false")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "segalign.toml")
	content := `
big_pause_seconds = 1.0
max_duration = 10.0
speaker_brackets = true

[speakers]
spk_0 = "Alice"
spk_1 = "Bob"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.BigPauseSeconds != 1.0 {
		t.Errorf("BigPauseSeconds = %f, want 1.0", s.BigPauseSeconds)
	}
	if s.MaxDuration != 10.0 {
		t.Errorf("MaxDuration = %f, want 10.0", s.MaxDuration)
	}
	if !s.SpeakerBrackets {
		t.Error("expected SpeakerBrackets true")
	}
	// Fields absent from the file keep their defaults.
	if s.MinWordsInSegment != 2 {
		t.Errorf("MinWordsInSegment = %d, want default 2", s.MinWordsInSegment)
	}
	if s.SpeakerMap["spk_1"] != "Bob" {
		t.Errorf("SpeakerMap = %v", s.SpeakerMap)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoad_BadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("max_duration = ["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed TOML")
	}
}
