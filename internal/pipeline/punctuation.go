package pipeline

import "unicode"

// hasAlphanumeric reports whether s contains at least one letter or digit.
func hasAlphanumeric(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// punctuationOnly reports whether every word in the segment carries no
// alphanumeric content.
func punctuationOnly(seg Segment) bool {
	for _, w := range seg {
		if hasAlphanumeric(w.Text) {
			return false
		}
	}
	return true
}

// CollapseOrphanedPunctuation merges punctuation-only segments into their
// preceding segment, appending the words so none are lost. A leading
// punctuation-only segment with no predecessor is prepended to the following
// segment instead. Merged segments are not re-checked against the duration
// ceiling.
func CollapseOrphanedPunctuation(segments []Segment) []Segment {
	if len(segments) == 0 {
		return nil
	}

	cleaned := make([]Segment, 0, len(segments))
	var leading Segment // orphaned words seen before the first real segment

	for _, seg := range segments {
		if punctuationOnly(seg) {
			if len(cleaned) > 0 {
				n := len(cleaned) - 1
				cleaned[n] = append(append(Segment(nil), cleaned[n]...), seg...)
			} else {
				leading = append(leading, seg...)
			}
			continue
		}
		if len(leading) > 0 {
			seg = append(append(Segment(nil), leading...), seg...)
			leading = nil
		}
		cleaned = append(cleaned, seg)
	}

	// Every segment was punctuation-only: nothing to merge into, keep them.
	if len(leading) > 0 {
		cleaned = append(cleaned, leading)
	}

	return cleaned
}
