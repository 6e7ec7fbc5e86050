package language

import (
	"strings"

	"golang.org/x/text/cases"
	xlang "golang.org/x/text/language"
)

// Undetermined is the ISO 639-2 tag containers use when no language is set.
const Undetermined = "und"

type entry struct {
	code2   string   // ISO 639-1
	code3   string   // ISO 639-2 primary
	alt3    string   // ISO 639-2 bibliographic alternate (e.g. "fre" vs "fra")
	display string   // Human-readable name
	words   []string // Full word forms (e.g. "english")
}

var languages = []entry{
	{"en", "eng", "", "English", []string{"english"}},
	{"es", "spa", "", "Spanish", []string{"spanish"}},
	{"fr", "fra", "fre", "French", []string{"french"}},
	{"de", "deu", "ger", "German", []string{"german"}},
	{"it", "ita", "", "Italian", []string{"italian"}},
	{"pt", "por", "", "Portuguese", []string{"portuguese"}},
	{"ja", "jpn", "", "Japanese", []string{"japanese"}},
	{"ko", "kor", "", "Korean", []string{"korean"}},
	{"zh", "zho", "chi", "Chinese", []string{"chinese"}},
	{"ru", "rus", "", "Russian", []string{"russian"}},
	{"nl", "nld", "dut", "Dutch", []string{"dutch"}},
	{"pl", "pol", "", "Polish", []string{"polish"}},
	{"sv", "swe", "", "Swedish", []string{"swedish"}},
	{"da", "dan", "", "Danish", []string{"danish"}},
	{"no", "nor", "", "Norwegian", []string{"norwegian"}},
	{"fi", "fin", "", "Finnish", []string{"finnish"}},
	{"hi", "hin", "", "Hindi", []string{"hindi"}},
	{"ar", "ara", "", "Arabic", []string{"arabic"}},
}

var byTag map[string]*entry

func init() {
	byTag = make(map[string]*entry, len(languages)*4)
	for i := range languages {
		e := &languages[i]
		byTag[e.code2] = e
		byTag[e.code3] = e
		if e.alt3 != "" {
			byTag[e.alt3] = e
		}
		for _, w := range e.words {
			byTag[w] = e
		}
	}
}

func lookup(tag string) *entry {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return nil
	}
	return byTag[tag]
}

// Normalize maps any recognized spelling of a language to its ISO 639-2
// primary tag. Unrecognized 3-letter tags pass through lowercased;
// everything else collapses to Undetermined.
func Normalize(tag string) string {
	cleaned := strings.ToLower(strings.TrimSpace(tag))
	if cleaned == "" {
		return Undetermined
	}
	if e := lookup(cleaned); e != nil {
		return e.code3
	}
	if len(cleaned) == 3 {
		return cleaned
	}
	return Undetermined
}

// Matches reports whether two language tags refer to the same language
// after normalization. An Undetermined tag matches nothing, including
// another Undetermined tag.
func Matches(tag, target string) bool {
	a := Normalize(tag)
	b := Normalize(target)
	if a == Undetermined || b == Undetermined {
		return false
	}
	return a == b
}

// DisplayName returns a human-readable name for a language tag. Unknown
// tags are title-cased so raw codes still render reasonably in tables.
func DisplayName(tag string) string {
	cleaned := strings.TrimSpace(tag)
	if cleaned == "" {
		return "Unknown"
	}
	if e := lookup(cleaned); e != nil {
		return e.display
	}
	if strings.EqualFold(cleaned, Undetermined) {
		return "Undetermined"
	}
	return cases.Title(xlang.Und).String(strings.ToLower(cleaned))
}

// ExtractFromTags pulls the language value out of stream metadata tags,
// trying the common key spellings in order.
func ExtractFromTags(tags map[string]string) string {
	if len(tags) == 0 {
		return ""
	}
	for _, key := range []string{"language", "LANGUAGE", "Language", "language_ietf", "lang", "LANG"} {
		if value, ok := tags[key]; ok {
			value = strings.TrimSpace(strings.ReplaceAll(value, "\x00", ""))
			if value != "" {
				return strings.ToLower(value)
			}
		}
	}
	return ""
}
