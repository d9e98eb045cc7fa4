package pipeline

// Group splits a word stream into candidate segments. A new segment starts
// when the silence gap between consecutive words exceeds bigPauseSeconds
// (strictly greater than; an exact-threshold gap does not split) or when the
// speaker changes. If the final segment ends up shorter than
// minWordsInSegment and a predecessor exists, it is folded into that
// predecessor; the fix-up applies once, to the tail only.
func Group(words []Word, bigPauseSeconds float64, minWordsInSegment int) []Segment {
	if len(words) == 0 {
		return nil
	}

	var segments []Segment
	current := Segment{words[0]}

	for _, w := range words[1:] {
		prev := current[len(current)-1]
		if w.Start-prev.End > bigPauseSeconds || w.SpeakerID != prev.SpeakerID {
			segments = append(segments, current)
			current = Segment{w}
		} else {
			current = append(current, w)
		}
	}
	segments = append(segments, current)

	if n := len(segments); n > 1 && len(segments[n-1]) < minWordsInSegment {
		segments[n-2] = append(segments[n-2], segments[n-1]...)
		segments = segments[:n-1]
	}

	return segments
}
