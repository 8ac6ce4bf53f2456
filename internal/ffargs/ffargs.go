package ffargs

import (
	"slices"
	"strings"
)

const (
	// FlagFilterV is the long-form video filter flag. New filters are always
	// written under this name.
	FlagFilterV = "-filter:v"
	// FlagVF is the short alias ffmpeg also accepts.
	FlagVF = "-vf"
	// Separator chains filters within a single filter graph value.
	Separator = ","
)

// Match is a located video filter flag.
type Match struct {
	Flag  string
	Value string
	// Index is the position of the flag; the value sits at Index+1.
	Index int
}

// Locate returns the first video filter flag that has a following value.
// -filter:v is checked before -vf.
func Locate(args []string) (Match, bool) {
	for _, flag := range []string{FlagFilterV, FlagVF} {
		idx := slices.Index(args, flag)
		if idx != -1 && idx+1 < len(args) {
			return Match{Flag: flag, Value: args[idx+1], Index: idx}, true
		}
	}
	return Match{}, false
}

// Has reports whether args carries a usable video filter flag.
func Has(args []string) bool {
	_, ok := Locate(args)
	return ok
}

// Merge appends filters after existing. A blank existing value is dropped so
// the result never starts with an empty segment.
func Merge(existing string, filters []string) string {
	if len(filters) == 0 {
		return existing
	}
	joined := strings.Join(filters, Separator)
	if strings.TrimSpace(existing) == "" {
		return joined
	}
	return existing + Separator + joined
}

// Inject merges filters into the video filter value of args, or appends a new
// -filter:v pair when none exists. The returned slice must replace args since
// the append path may reallocate.
func Inject(args []string, filters []string) []string {
	if len(filters) == 0 {
		return args
	}
	if m, ok := Locate(args); ok {
		args[m.Index+1] = Merge(m.Value, filters)
		return args
	}
	return append(args, FlagFilterV, strings.Join(filters, Separator))
}
