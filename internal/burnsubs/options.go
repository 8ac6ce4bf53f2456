package burnsubs

import (
	"math"
	"strings"

	"github.com/mitchellh/mapstructure"

	"subburn/internal/flow"
	"subburn/internal/language"
	"subburn/internal/services"
)

// ErrInvalidMaxSubtitles is returned when max_subtitles is not a
// non-negative integer.
var ErrInvalidMaxSubtitles = services.Fixed(services.ErrValidation,
	"Invalid value for max_subtitles input. Must be a non-negative integer.")

// Options is the resolved, immutable plugin configuration.
type Options struct {
	// LanguageTags holds lower-cased tags to burn; empty selects every
	// subtitle stream.
	LanguageTags []string
	// AlsoBurnUntagged keeps streams without a language tag when
	// LanguageTags is set.
	AlsoBurnUntagged bool
	// MaxSubtitles caps the selection; 0 means no cap.
	MaxSubtitles int
}

// rawInputs mirrors the engine's input map. Text fields are weakly decoded so
// numbers and booleans arrive in their textual form.
type rawInputs struct {
	LanguageTags     string `mapstructure:"language_tags"`
	AlsoBurnUntagged any    `mapstructure:"also_burn_untaged"`
	MaxSubtitles     any    `mapstructure:"max_subtitles"`
}

// ResolveOptions applies the declared input defaults and converts the
// engine's loosely typed values into Options.
func ResolveOptions(inputs map[string]any) (Options, error) {
	resolved := flow.LoadDefaultValues(inputs, Details())

	var raw rawInputs
	if err := mapstructure.WeakDecode(resolved, &raw); err != nil {
		return Options{}, services.Wrap(services.ErrValidation, ID, "resolve inputs", inputLanguageTags, err)
	}

	// Weak decoding renders booleans as "1"/"0"; they are never a count.
	if _, isBool := raw.MaxSubtitles.(bool); isBool {
		return Options{}, ErrInvalidMaxSubtitles
	}
	var maxText string
	if err := mapstructure.WeakDecode(raw.MaxSubtitles, &maxText); err != nil {
		return Options{}, ErrInvalidMaxSubtitles
	}
	maxSubtitles, ok := parseLeadingInt(maxText)
	if !ok || maxSubtitles < 0 {
		return Options{}, ErrInvalidMaxSubtitles
	}

	return Options{
		LanguageTags:     language.ParseList(raw.LanguageTags),
		AlsoBurnUntagged: isTrue(raw.AlsoBurnUntagged),
		MaxSubtitles:     maxSubtitles,
	}, nil
}

// isTrue accepts only a boolean true or the exact string "true".
func isTrue(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}

// parseLeadingInt reads a base-10 integer prefix the way the engine's UI
// values are interpreted: leading whitespace and a sign are allowed and any
// trailing text after the digits is ignored ("3 tracks" is 3). Values too
// large to matter saturate.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}
	digits := 0
	value := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		if value < math.MaxInt32/10 {
			value = value*10 + int(s[digits]-'0')
		} else {
			value = math.MaxInt32
		}
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if negative {
		value = -value
	}
	return value, true
}
