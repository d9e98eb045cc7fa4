package config

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the ISO 639-3 code used when no usable language code is
// available.
const DefaultLanguage = "eng"

// iso1ToIso3 maps ISO 639-1 codes to ISO 639-3.
var iso1ToIso3 = map[string]string{
	"en": "eng",
	"es": "spa",
	"pt": "por",
	"fr": "fra",
	"de": "deu",
	"it": "ita",
	"nl": "nld",
	"zh": "cmn",
	"ja": "jpn",
	"ko": "kor",
	"ar": "ara",
	"hi": "hin",
	"bn": "ben",
	"ta": "tam",
	"te": "tel",
	"mr": "mar",
	"gu": "guj",
	"kn": "kan",
	"pa": "pan",
	"ml": "mal",
	"ur": "urd",
}

// NormalizeLanguage resolves a 2-letter (ISO 639-1), 3-letter (ISO 639-3),
// or BCP 47 language code to ISO 639-3, falling back to DefaultLanguage for
// anything unrecognized. Longer tags like "en-US" are reduced to their base
// language first.
func NormalizeLanguage(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return DefaultLanguage
	}

	if len(code) > 3 {
		tag, err := language.Parse(code)
		if err != nil {
			return DefaultLanguage
		}
		base, conf := tag.Base()
		if conf == language.No {
			return DefaultLanguage
		}
		code = base.String()
	}

	if len(code) == 2 {
		if iso3, ok := iso1ToIso3[code]; ok {
			return iso3
		}
		return DefaultLanguage
	}
	return code
}
