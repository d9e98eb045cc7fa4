// Package transcript loads and validates transcription JSON: an ordered word
// list with text, start, end, and speaker_id per word, plus an optional
// language code.
package transcript

import (
	"encoding/json"
	"fmt"
	"os"

	"segalign/internal/pipeline"
)

// Transcript is the parsed input document.
type Transcript struct {
	LanguageCode string          `json:"language_code"`
	Words        []pipeline.Word `json:"words"`
}

// ValidationError reports absent or malformed required input fields. It is
// fatal to the invocation; no segments are produced past it.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// rawWord mirrors pipeline.Word with pointer fields so absent keys can be
// told apart from zero values.
type rawWord struct {
	Text      *string  `json:"text"`
	Start     *float64 `json:"start"`
	End       *float64 `json:"end"`
	SpeakerID *string  `json:"speaker_id"`
}

type rawTranscript struct {
	LanguageCode string    `json:"language_code"`
	Words        []rawWord `json:"words"`
}

// Parse decodes and validates transcription JSON. Every word must carry
// text, start, end, and speaker_id; a missing field fails the whole parse
// with a ValidationError naming the word index and field.
func Parse(data []byte) (*Transcript, error) {
	var raw rawTranscript
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, validationErrorf("invalid transcription JSON: %v", err)
	}
	if raw.Words == nil {
		return nil, validationErrorf("transcription missing required 'words' list")
	}

	words := make([]pipeline.Word, 0, len(raw.Words))
	for i, w := range raw.Words {
		switch {
		case w.Text == nil:
			return nil, validationErrorf("word %d: missing required field 'text'", i)
		case w.Start == nil:
			return nil, validationErrorf("word %d: missing required field 'start'", i)
		case w.End == nil:
			return nil, validationErrorf("word %d: missing required field 'end'", i)
		case w.SpeakerID == nil:
			return nil, validationErrorf("word %d: missing required field 'speaker_id'", i)
		}
		words = append(words, pipeline.Word{
			Text:      *w.Text,
			Start:     *w.Start,
			End:       *w.End,
			SpeakerID: *w.SpeakerID,
		})
	}

	return &Transcript{LanguageCode: raw.LanguageCode, Words: words}, nil
}

// Load reads and parses a transcription JSON file.
func Load(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcription: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
