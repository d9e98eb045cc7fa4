package pipeline

import (
	"segalign/internal/config"
)

// GroupedSegments runs the full segmentation pipeline over a word stream:
// pause/speaker grouping, sentence-boundary merging, duration splitting, and
// (unless disabled) orphaned-punctuation collapse. The language code is
// normalized once before any classifier-dependent pass.
func GroupedSegments(words []Word, settings *config.Settings) []Segment {
	if len(words) == 0 {
		return nil
	}

	b := NewBoundary(config.NormalizeLanguage(settings.LanguageCode))

	segments := Group(words, settings.BigPauseSeconds, settings.MinWordsInSegment)
	segments = MergeSentenceBoundaries(segments, b)
	segments = SplitLongSegments(segments, settings.MaxDuration, b)
	if settings.FixOrphanedPunctuation {
		segments = CollapseOrphanedPunctuation(segments)
	}
	return segments
}

// Process runs the pipeline and projects the result into output records.
// Speaker renaming and bracket decoration happen here, at projection time
// only; the passes themselves always see raw speaker identifiers.
func Process(words []Word, settings *config.Settings) []Record {
	grouped := GroupedSegments(words, settings)

	records := make([]Record, 0, len(grouped))
	for _, seg := range grouped {
		speaker := seg.Speaker()
		if renamed, ok := settings.SpeakerMap[speaker]; ok {
			speaker = renamed
		}
		if settings.SpeakerBrackets {
			speaker = "- [" + speaker + "]"
		}
		records = append(records, Record{
			Speaker: speaker,
			Start:   seg.Start(),
			End:     seg.End(),
			Text:    seg.Text(),
		})
	}
	return records
}
