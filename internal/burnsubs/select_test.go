package burnsubs_test

import (
	"testing"

	"subburn/internal/burnsubs"
	"subburn/internal/flow"
)

func TestSelectSubtitles(t *testing.T) {
	cmd := &flow.FFmpegCommand{Streams: []flow.Stream{
		videoStream(0),
		subtitleStream(1, "eng"),
		{Index: 2, CodecType: "audio"},
		subtitleStream(3, ""),
		subtitleStream(4, "jpn"),
		{Index: 5, CodecType: "SUBTITLE", Tags: &flow.StreamTags{Title: "Signs"}},
	}}

	tests := []struct {
		name string
		opts burnsubs.Options
		want []int
	}{
		{name: "no tags selects all", opts: burnsubs.Options{}, want: []int{1, 3, 4, 5}},
		{name: "tag match only", opts: burnsubs.Options{LanguageTags: []string{"jpn"}}, want: []int{4}},
		{name: "tag plus untagged", opts: burnsubs.Options{LanguageTags: []string{"jpn"}, AlsoBurnUntagged: true}, want: []int{3, 4, 5}},
		{name: "several tags keep descriptor order", opts: burnsubs.Options{LanguageTags: []string{"jpn", "eng"}}, want: []int{1, 4}},
		{name: "cap keeps first found", opts: burnsubs.Options{MaxSubtitles: 2}, want: []int{1, 3}},
		{name: "cap larger than selection", opts: burnsubs.Options{MaxSubtitles: 10}, want: []int{1, 3, 4, 5}},
		{name: "untagged flag ignored without tags", opts: burnsubs.Options{AlsoBurnUntagged: false}, want: []int{1, 3, 4, 5}},
		{name: "no match", opts: burnsubs.Options{LanguageTags: []string{"ger"}}, want: nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := burnsubs.SelectSubtitles(cmd, tc.opts)
			if len(got) != len(tc.want) {
				t.Fatalf("selected %d streams, want %d", len(got), len(tc.want))
			}
			for i, stream := range got {
				if stream.Index != tc.want[i] {
					t.Fatalf("selection[%d] = stream %d, want %d", i, stream.Index, tc.want[i])
				}
			}
		})
	}
}
