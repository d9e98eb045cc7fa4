package pipeline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ruleSet is the per-language sentence-boundary data: the set of terminal
// punctuation runes and the acronym pattern whose internal periods must not
// be read as sentence ends.
type ruleSet struct {
	terminals map[rune]struct{}
	acronym   *regexp.Regexp
}

var latinTerminals = map[rune]struct{}{
	'.': {}, '!': {}, '?': {},
}

var cjkTerminals = map[rune]struct{}{
	'.': {}, '!': {}, '?': {},
	'。': {}, '！': {}, '？': {}, // 。！？
}

// latinAcronym matches whole tokens built from repeated single uppercase
// letters followed by periods, e.g. "B.M.W." or "A.B.S.".
var latinAcronym = regexp.MustCompile(`^(?:[A-ZÄÖÜ]\.){2,}$`)

var latinRules = ruleSet{terminals: latinTerminals, acronym: latinAcronym}
var cjkRules = ruleSet{terminals: cjkTerminals, acronym: latinAcronym}

// languageRules maps normalized ISO 639-3 codes to their rule sets. Languages
// without an entry use the default (English) rules.
var languageRules = map[string]ruleSet{
	"eng": latinRules,
	"spa": latinRules,
	"por": latinRules,
	"fra": latinRules,
	"deu": latinRules,
	"ita": latinRules,
	"nld": latinRules,
	"cmn": cjkRules,
	"jpn": cjkRules,
	"kor": cjkRules,
}

// Boundary classifies sentence boundaries for a single language. The merger
// and the splitter share one Boundary so their acronym handling can never
// diverge.
type Boundary struct {
	language string
	rules    ruleSet
}

// NewBoundary creates a classifier for a normalized ISO 639-3 language code.
// Unrecognized codes fall back to English rules.
func NewBoundary(language string) *Boundary {
	rules, ok := languageRules[language]
	if !ok {
		rules = languageRules["eng"]
	}
	return &Boundary{language: language, rules: rules}
}

// EndsSentence reports whether a sentence ends after token. next is the
// immediately following token, or the empty string at end of input.
//
// A token matching the acronym pattern never ends a sentence on its internal
// periods: the acronym as a whole ends a sentence only when the next token
// starts a new sentence (capital letter) or the input ends. When the signal
// is ambiguous the classifier answers true, since a false split is repaired
// by the sentence-boundary merge while a missed one cannot be.
func (b *Boundary) EndsSentence(token, next string) bool {
	token = strings.TrimSpace(token)
	if token == "" {
		return false
	}

	last, _ := utf8.DecodeLastRuneInString(token)
	if _, ok := b.rules.terminals[last]; !ok {
		return false
	}

	if b.rules.acronym != nil && b.rules.acronym.MatchString(token) {
		next = strings.TrimSpace(next)
		if next == "" {
			return true
		}
		first, _ := utf8.DecodeRuneInString(next)
		if unicode.IsLower(first) {
			return false
		}
		return true
	}

	return true
}
