package language

import (
	"strings"

	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const unknownName = "Unknown"

// DisplayName returns a human-readable English name for a language tag such
// as "eng", "ja" or "pt-BR". Empty and undetermined tags yield "Unknown";
// unrecognized tags are returned upper-cased.
func DisplayName(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return unknownName
	}
	tag, err := xlanguage.Parse(code)
	if err != nil {
		return strings.ToUpper(code)
	}
	if tag == xlanguage.Und {
		return unknownName
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return strings.ToUpper(code)
}

// ParseList splits a comma separated list of language tags, trimming and
// lower-casing each entry and dropping empty ones. Tags are kept as written:
// "eng" and "en" stay distinct because stream tags are matched verbatim.
func ParseList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag == "" {
			continue
		}
		out = append(out, tag)
	}
	return out
}
