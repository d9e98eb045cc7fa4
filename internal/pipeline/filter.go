package pipeline

import "regexp"

// Patterns for stripping speaker tags and bracketed annotations before
// checking whether any real content remains.
var (
	speakerTagPattern = regexp.MustCompile(`-\s*\[[^\]]+\]\s*`)
	bracketPattern    = regexp.MustCompile(`\[[^\]]+\]\s*`)
	parenPattern      = regexp.MustCompile(`\([^)]*\)`)
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)

	meaningfulWord = regexp.MustCompile(`\w*[a-zA-Z0-9]\w*`)
)

// ContainsMeaningfulWords reports whether text still carries at least one
// word with a letter or digit once speaker tags, bracketed annotations, and
// markup are stripped away.
func ContainsMeaningfulWords(text string) bool {
	if text == "" {
		return false
	}
	cleaned := speakerTagPattern.ReplaceAllString(text, "")
	cleaned = bracketPattern.ReplaceAllString(cleaned, "")
	cleaned = parenPattern.ReplaceAllString(cleaned, "")
	cleaned = htmlTagPattern.ReplaceAllString(cleaned, "")
	return meaningfulWord.MatchString(cleaned)
}

// FilterRecords drops records whose text has no meaningful content, such as
// pure filler punctuation or a lone bracketed annotation. It returns a new
// slice; the input is untouched.
func FilterRecords(records []Record) []Record {
	filtered := make([]Record, 0, len(records))
	for _, rec := range records {
		if ContainsMeaningfulWords(rec.Text) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
