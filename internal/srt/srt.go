// Package srt serializes segment records into SubRip subtitle text.
package srt

import (
	"fmt"
	"math"
	"strings"

	"segalign/internal/pipeline"
)

// FormatTime converts seconds to the SRT timestamp format HH:MM:SS,mmm.
func FormatTime(seconds float64) string {
	totalSec := math.Abs(seconds)
	hours := int(totalSec / 3600)
	remainder := math.Mod(totalSec, 3600)
	minutes := int(remainder / 60)
	secs := math.Mod(remainder, 60)
	millis := int(math.Mod(secs, 1) * 1000)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, int(secs), millis)
}

// Render produces numbered SRT cues from records. Records are expected to
// carry raw speaker labels; when speakerBrackets is set each cue's text line
// is prefixed with "- [speaker] ", otherwise with "[speaker] ".
func Render(records []pipeline.Record, speakerBrackets bool) string {
	var sb strings.Builder
	for i, rec := range records {
		label := "[" + rec.Speaker + "] "
		if speakerBrackets {
			label = "- " + label
		}
		fmt.Fprintf(&sb, "%d\n%s --> %s\n%s%s\n\n",
			i+1, FormatTime(rec.Start), FormatTime(rec.End), label, rec.Text)
	}
	return sb.String()
}
