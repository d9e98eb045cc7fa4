package transcript

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"segalign/internal/pipeline"
)

var speakerNumber = regexp.MustCompile(`(\d+)`)

// Diarization backends label speakers inconsistently: "spk_0", "speaker_1",
// "SPEAKER 2", and so on, some counting from zero and some from one.
var speakerPrefixes = []string{"speaker_", "spk_", "speaker", "spk"}

// NormalizeSpeakerID canonicalizes a raw speaker label to "Speaker N"
// (1-based). Zero-based "speaker_N" style labels are shifted up by one.
// Labels without any number become "Speaker 1".
func NormalizeSpeakerID(id string) string {
	if id == "" {
		return "Speaker 1"
	}

	cleaned := strings.ToLower(id)
	for _, prefix := range speakerPrefixes {
		if strings.HasPrefix(cleaned, prefix) {
			cleaned = cleaned[len(prefix):]
			break
		}
	}

	m := speakerNumber.FindString(cleaned)
	if m == "" {
		return "Speaker 1"
	}

	num, err := strconv.Atoi(m)
	if err != nil {
		return "Speaker 1"
	}
	if strings.HasPrefix(strings.ToLower(id), "speaker_") {
		num++
	} else if num == 0 {
		num = 1
	}
	return fmt.Sprintf("Speaker %d", num)
}

// NormalizeSpeakerIDs returns a copy of words with every speaker label
// canonicalized; the input slice is untouched.
func NormalizeSpeakerIDs(words []pipeline.Word) []pipeline.Word {
	out := make([]pipeline.Word, len(words))
	for i, w := range words {
		w.SpeakerID = NormalizeSpeakerID(w.SpeakerID)
		out[i] = w
	}
	return out
}
