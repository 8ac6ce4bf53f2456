package flow_test

import (
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"testing"

	"subburn/internal/flow"
	"subburn/internal/media/ffprobe"
	"subburn/internal/services"
)

const sequencingMessage = `FFmpeg command plugins not used correctly. ` +
	`Please use the "Begin Command" plugin before using this plugin. ` +
	`Afterwards, use the "Execute" plugin to execute the built FFmpeg command. ` +
	`Once the "Execute" plugin has been used, you need to use a new "Begin Command" ` +
	`plugin to start a new FFmpeg command.`

func TestCheckFFmpegCommandInit(t *testing.T) {
	tests := []struct {
		name    string
		args    *flow.InputArgs
		wantErr bool
	}{
		{name: "nil args", args: nil, wantErr: true},
		{name: "nil variables", args: &flow.InputArgs{}, wantErr: true},
		{name: "nil command", args: &flow.InputArgs{Variables: &flow.Variables{}}, wantErr: true},
		{name: "not initialized", args: &flow.InputArgs{Variables: &flow.Variables{FFmpegCommand: &flow.FFmpegCommand{}}}, wantErr: true},
		{name: "initialized", args: &flow.InputArgs{Variables: &flow.Variables{FFmpegCommand: &flow.FFmpegCommand{Init: true}}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := flow.CheckFFmpegCommandInit(tc.args)
			if !tc.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != sequencingMessage {
				t.Fatalf("unexpected message: %q", err.Error())
			}
			if !errors.Is(err, services.ErrSequencing) {
				t.Fatalf("expected sequencing marker, got %v", err)
			}
		})
	}
}

func TestFirstStreamOfTypeIgnoresCaseAndReturnsPointer(t *testing.T) {
	cmd := &flow.FFmpegCommand{Streams: []flow.Stream{
		{Index: 0, CodecType: "audio"},
		{Index: 1, CodecType: "VIDEO"},
		{Index: 2, CodecType: "video"},
	}}
	video := cmd.FirstStreamOfType(flow.CodecTypeVideo)
	if video == nil || video.Index != 1 {
		t.Fatalf("expected first video stream at index 1, got %+v", video)
	}
	video.OutputArgs = append(video.OutputArgs, "-crf", "20")
	if len(cmd.Streams[1].OutputArgs) != 2 {
		t.Fatal("expected edit through pointer to reach the descriptor")
	}
	if cmd.FirstStreamOfType(flow.CodecTypeSubtitle) != nil {
		t.Fatal("expected no subtitle stream")
	}
	if got := len(cmd.StreamsOfType("Video")); got != 2 {
		t.Fatalf("expected 2 video streams, got %d", got)
	}
}

func TestStreamTagAccessors(t *testing.T) {
	untagged := flow.Stream{}
	if untagged.Language() != "" || untagged.Title() != "" {
		t.Fatal("expected empty tags for untagged stream")
	}
	tagged := flow.Stream{Tags: &flow.StreamTags{Language: "ENG", Title: "Full"}}
	if tagged.Language() != "eng" {
		t.Fatalf("expected lower-cased language, got %q", tagged.Language())
	}
	if tagged.Title() != "Full" {
		t.Fatalf("unexpected title %q", tagged.Title())
	}
}

func TestLoadDefaultValuesDoesNotMutateCaller(t *testing.T) {
	details := flow.Details{Inputs: []flow.InputDetail{
		{Name: "a", DefaultValue: "x"},
		{Name: "b", DefaultValue: "2"},
		{Name: "c", DefaultValue: "true"},
	}}
	inputs := map[string]any{"a": "given", "c": nil, "extra": 7}

	got := flow.LoadDefaultValues(inputs, details)
	if got["a"] != "given" {
		t.Fatalf("expected explicit value kept, got %v", got["a"])
	}
	if got["b"] != "2" {
		t.Fatalf("expected default for absent input, got %v", got["b"])
	}
	if got["c"] != "true" {
		t.Fatalf("expected default for null input, got %v", got["c"])
	}
	if got["extra"] != 7 {
		t.Fatalf("expected undeclared inputs carried through, got %v", got["extra"])
	}
	if _, ok := inputs["b"]; ok {
		t.Fatal("caller map was modified")
	}
	if inputs["c"] != nil {
		t.Fatal("caller map was modified")
	}

	if got := flow.LoadDefaultValues(nil, details); len(got) != 3 {
		t.Fatalf("expected defaults for nil inputs, got %v", got)
	}
}

func TestFileObjectRoundTripPreservesFields(t *testing.T) {
	payload := `{"_id":"/media/show.mkv","file_size":812.5,"container":"mkv","ffProbeData":{"streams":[]}}`

	var obj flow.FileObject
	if err := json.Unmarshal([]byte(payload), &obj); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if obj.ID != "/media/show.mkv" {
		t.Fatalf("unexpected id %q", obj.ID)
	}
	if raw, ok := obj.Field("container"); !ok || string(raw) != `"mkv"` {
		t.Fatalf("expected container field preserved, got %s", raw)
	}

	out, err := json.Marshal(&obj)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back map[string]any
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if back["_id"] != "/media/show.mkv" || back["container"] != "mkv" || back["file_size"] != 812.5 {
		t.Fatalf("round trip lost fields: %s", out)
	}
}

func TestVariablesRoundTripKeepsHostFields(t *testing.T) {
	payload := `{
  "flowFailed": false,
  "user": {},
  "liveSizeCompare": {"enabled": true},
  "ffmpegCommand": {
    "init": true,
    "isVideo": true,
    "inputFiles": ["/media/a.mkv"],
    "streams": [{
      "index": 0,
      "codec_type": "video",
      "codec_name": "h264",
      "width": 1920,
      "disposition": {"default": 1},
      "tags": {"language": "eng", "handler_name": "VideoHandler"},
      "mapArgs": ["-map", "0:0"],
      "outputArgs": []
    }]
  }
}`

	var vars flow.Variables
	if err := json.Unmarshal([]byte(payload), &vars); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	video := vars.FFmpegCommand.FirstStreamOfType(flow.CodecTypeVideo)
	video.OutputArgs = append(video.OutputArgs, "-filter:v", "null")

	out, err := json.Marshal(&vars)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back struct {
		LiveSizeCompare map[string]bool `json:"liveSizeCompare"`
		FFmpegCommand   struct {
			IsVideo bool `json:"isVideo"`
			Streams []struct {
				Width       int               `json:"width"`
				Disposition map[string]int    `json:"disposition"`
				Tags        map[string]string `json:"tags"`
				OutputArgs  []string          `json:"outputArgs"`
			} `json:"streams"`
		} `json:"ffmpegCommand"`
	}
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if !back.LiveSizeCompare["enabled"] || !back.FFmpegCommand.IsVideo {
		t.Fatalf("variables or command fields lost: %s", out)
	}
	stream := back.FFmpegCommand.Streams[0]
	if stream.Width != 1920 || stream.Disposition["default"] != 1 {
		t.Fatalf("stream fields lost: %s", out)
	}
	if stream.Tags["handler_name"] != "VideoHandler" || stream.Tags["language"] != "eng" {
		t.Fatalf("tag fields lost: %s", out)
	}
	if !slices.Equal(stream.OutputArgs, []string{"-filter:v", "null"}) {
		t.Fatalf("modelled field edits not written: %q", stream.OutputArgs)
	}
}

func TestModelledFieldsWinOverCaseVariants(t *testing.T) {
	var stream flow.Stream
	if err := json.Unmarshal([]byte(`{"Index": 4, "codec_type": "subtitle"}`), &stream); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out, err := json.Marshal(stream)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(out), `"Index"`) || !strings.Contains(string(out), `"index":4`) {
		t.Fatalf("expected a single canonical index member, got %s", out)
	}
}

func TestInputArgsLogIgnoresMissingCallback(t *testing.T) {
	var args *flow.InputArgs
	args.Log("ignored")
	(&flow.InputArgs{}).Log("ignored")

	var lines []string
	(&flow.InputArgs{JobLog: func(s string) { lines = append(lines, s) }}).Log("hello")
	if !slices.Equal(lines, []string{"hello"}) {
		t.Fatalf("unexpected log lines %v", lines)
	}
}

func TestNewCommandFromProbe(t *testing.T) {
	probe := ffprobe.Result{Streams: []ffprobe.Stream{
		{Index: 0, CodecName: "hevc", CodecType: "video"},
		{Index: 1, CodecName: "subrip", CodecType: "subtitle", Tags: ffprobe.Tags{Language: "eng", Title: "SDH"}},
	}}
	cmd := flow.NewCommand("/media/Show.MKV", probe)
	if !cmd.Init {
		t.Fatal("expected initialized descriptor")
	}
	if cmd.Container != "mkv" {
		t.Fatalf("unexpected container %q", cmd.Container)
	}
	if !slices.Equal(cmd.InputFiles, []string{"/media/Show.MKV"}) {
		t.Fatalf("unexpected input files %v", cmd.InputFiles)
	}
	if len(cmd.Streams) != 2 {
		t.Fatalf("expected 2 streams, got %d", len(cmd.Streams))
	}
	if !slices.Equal(cmd.Streams[1].MapArgs, []string{"-map", "0:1"}) {
		t.Fatalf("unexpected map args %v", cmd.Streams[1].MapArgs)
	}
	if cmd.Streams[0].Tags != nil {
		t.Fatal("expected untagged video stream")
	}
	if cmd.Streams[1].Language() != "eng" || cmd.Streams[1].Title() != "SDH" {
		t.Fatalf("unexpected tags %+v", cmd.Streams[1].Tags)
	}
	if err := flow.CheckFFmpegCommandInit(&flow.InputArgs{Variables: &flow.Variables{FFmpegCommand: cmd}}); err != nil {
		t.Fatalf("expected descriptor to pass the init guard: %v", err)
	}
}

func TestBuildArgs(t *testing.T) {
	cmd := &flow.FFmpegCommand{
		Init:                  true,
		OverallInputArguments: []string{"-t", "60"},
		OverallOuputArguments: []string{"-movflags", "+faststart"},
		Streams: []flow.Stream{
			{Index: 0, CodecType: "video", MapArgs: []string{"-map", "0:0"}, InputArgs: []string{"-hwaccel", "auto"}, OutputArgs: []string{"-c:{outputIndex}", "libx264", "-filter:v", "subtitles=filename='/in.mkv':si=0"}},
			{Index: 1, CodecType: "audio", MapArgs: []string{"-map", "0:1"}},
			{Index: 2, CodecType: "audio", Removed: true, MapArgs: []string{"-map", "0:2"}},
			{Index: 3, CodecType: "audio", MapArgs: []string{"-map", "0:3"}, OutputArgs: []string{"-c:a:{outputTypeIndex}", "aac"}},
		},
	}

	got, err := flow.BuildArgs(cmd, "/in.mkv", "/out.mkv")
	if err != nil {
		t.Fatalf("BuildArgs: %v", err)
	}
	want := []string{
		"-y", "-t", "60", "-hwaccel", "auto", "-i", "/in.mkv",
		"-map", "0:0", "-c:0", "libx264", "-filter:v", "subtitles=filename='/in.mkv':si=0",
		"-map", "0:1", "-c:1", "copy",
		"-map", "0:3", "-c:a:1", "aac",
		"-movflags", "+faststart",
		"/out.mkv",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("BuildArgs mismatch\n got: %s\nwant: %s", strings.Join(got, " "), strings.Join(want, " "))
	}
	if cmd.Streams[0].OutputArgs[0] != "-c:{outputIndex}" {
		t.Fatal("BuildArgs must not modify the descriptor")
	}
}

func TestBuildArgsRequiresInitializedCommand(t *testing.T) {
	if _, err := flow.BuildArgs(&flow.FFmpegCommand{}, "/in", "/out"); !errors.Is(err, services.ErrSequencing) {
		t.Fatalf("expected sequencing error, got %v", err)
	}
	if _, err := flow.BuildArgs(&flow.FFmpegCommand{Init: true}, "/in", " "); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
