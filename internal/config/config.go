package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Settings holds the segmentation parameters recognized by every entry
// point (CLI, HTTP, library).
type Settings struct {
	// BigPauseSeconds is the silence gap that forces a new segment when
	// strictly exceeded between consecutive words.
	BigPauseSeconds float64 `toml:"big_pause_seconds" json:"big_pause_seconds"`

	// MinWordsInSegment is the minimum trailing-segment word count before
	// the tail is folded into its predecessor.
	MinWordsInSegment int `toml:"min_words_in_segment" json:"min_words_in_segment"`

	// MaxDuration is the per-segment duration ceiling in seconds.
	MaxDuration float64 `toml:"max_duration" json:"max_duration"`

	// LanguageCode drives sentence-boundary rules. Empty means "take it
	// from the transcription, defaulting to eng".
	LanguageCode string `toml:"language_code" json:"language_code"`

	// SpeakerBrackets formats output speaker labels as "- [Speaker]".
	SpeakerBrackets bool `toml:"speaker_brackets" json:"speaker_brackets"`

	// FixOrphanedPunctuation merges punctuation-only segments into a
	// neighbor instead of emitting them standalone.
	FixOrphanedPunctuation bool `toml:"fix_orphaned_punctuation" json:"fix_orphaned_punctuation"`

	// SpeakerMap renames speaker IDs at output time.
	SpeakerMap map[string]string `toml:"speakers" json:"-"`
}

// Default returns the stock settings, matching the upstream aligner defaults.
func Default() *Settings {
	return &Settings{
		BigPauseSeconds:        0.75,
		MinWordsInSegment:      2,
		MaxDuration:            15.0,
		LanguageCode:           "",
		SpeakerBrackets:        false,
		FixOrphanedPunctuation: true,
	}
}

// Load reads a TOML settings file layered over the defaults.
func Load(path string) (*Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return s, nil
}
