package pipeline

// MergeSentenceBoundaries fuses adjacent segments whose shared boundary
// falls mid-sentence: when the classifier says the last token of a segment
// does not end a sentence, the following segment is concatenated onto it,
// and scanning continues against the new right neighbor, so merges cascade
// across any number of original segments.
//
// This pass consults punctuation only. It does not re-check speaker
// identity, so a sentence spanning what initial grouping emitted as separate
// speaker or pause segments is fused back together; callers requiring hard
// speaker isolation must enforce it themselves before invoking this pass.
func MergeSentenceBoundaries(segments []Segment, b *Boundary) []Segment {
	if len(segments) == 0 {
		return nil
	}

	merged := make([]Segment, 0, len(segments))
	current := append(Segment(nil), segments[0]...)

	for _, next := range segments[1:] {
		last := current[len(current)-1].Text
		if b.EndsSentence(last, next[0].Text) {
			merged = append(merged, current)
			current = append(Segment(nil), next...)
		} else {
			current = append(current, next...)
		}
	}

	return append(merged, current)
}
