package pipeline

import "strings"

// UnknownSpeaker is the sentinel used when a word carries no speaker label.
const UnknownSpeaker = "unknown"

// Word is a single timestamped token from a transcription.
type Word struct {
	Text      string  `json:"text"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	SpeakerID string  `json:"speaker_id"`
}

// Segment is a contiguous, ordered run of words emitted as one
// timing/speaker/text unit. Segments are non-empty at every pipeline stage.
type Segment []Word

// Start returns the start time of the first word.
func (s Segment) Start() float64 { return s[0].Start }

// End returns the end time of the last word.
func (s Segment) End() float64 { return s[len(s)-1].End }

// Duration returns last word end minus first word start.
func (s Segment) Duration() float64 { return s.End() - s.Start() }

// Speaker returns the speaker of the first word, or UnknownSpeaker when the
// word carries no label.
func (s Segment) Speaker() string {
	if s[0].SpeakerID == "" {
		return UnknownSpeaker
	}
	return s[0].SpeakerID
}

// Text joins the segment's word texts with single spaces, preserving each
// token verbatim.
func (s Segment) Text() string {
	parts := make([]string, len(s))
	for i, w := range s {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}

// Record is the terminal, externally consumed projection of a segment.
type Record struct {
	Speaker string  `json:"speaker"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
}
