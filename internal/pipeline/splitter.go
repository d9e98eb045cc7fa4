package pipeline

import "math"

// SplitLongSegments re-splits any segment whose duration exceeds maxDuration
// at the sentence boundary nearest the segment's temporal midpoint.
// Splitting recurses into both halves until every piece fits or no further
// boundary exists. A segment with no internal sentence boundary is left
// oversized rather than split mid-sentence or mid-acronym.
func SplitLongSegments(segments []Segment, maxDuration float64, b *Boundary) []Segment {
	if len(segments) == 0 {
		return nil
	}

	out := make([]Segment, 0, len(segments))
	for _, seg := range segments {
		out = append(out, splitSegment(seg, maxDuration, b)...)
	}
	return out
}

func splitSegment(seg Segment, maxDuration float64, b *Boundary) []Segment {
	if seg.Duration() <= maxDuration {
		return []Segment{seg}
	}

	idx := splitIndex(seg, b)
	if idx < 0 {
		return []Segment{seg}
	}

	left := append(Segment(nil), seg[:idx+1]...)
	right := append(Segment(nil), seg[idx+1:]...)

	result := splitSegment(left, maxDuration, b)
	return append(result, splitSegment(right, maxDuration, b)...)
}

// splitIndex returns the index of the sentence-ending token closest to the
// segment's temporal midpoint, or -1 when no internal boundary exists. The
// boundary token stays with the left half, so only indexes before the last
// word qualify.
func splitIndex(seg Segment, b *Boundary) int {
	mid := seg.Start() + seg.Duration()/2

	best := -1
	bestDist := math.MaxFloat64
	for i := 0; i < len(seg)-1; i++ {
		if !b.EndsSentence(seg[i].Text, seg[i+1].Text) {
			continue
		}
		if d := math.Abs(seg[i].End - mid); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
