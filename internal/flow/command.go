package flow

import "strings"

// Codec type categories used by stream descriptors.
const (
	CodecTypeVideo    = "video"
	CodecTypeAudio    = "audio"
	CodecTypeSubtitle = "subtitle"
)

// StreamTags carries the stream tags plugins inspect.
type StreamTags struct {
	Language string `json:"language,omitempty"`
	Title    string `json:"title,omitempty"`

	extra rawFields
}

func (t *StreamTags) UnmarshalJSON(data []byte) error {
	type plain StreamTags
	var p plain
	extra, err := decodeKeepingUnknown(data, &p)
	if err != nil {
		return err
	}
	*t = StreamTags(p)
	t.extra = extra
	return nil
}

func (t StreamTags) MarshalJSON() ([]byte, error) {
	type plain StreamTags
	return encodeWithUnknown(plain(t), t.extra)
}

// Stream describes one elementary stream of the source container together
// with the arguments that will be emitted for it.
type Stream struct {
	Index         int         `json:"index"`
	CodecName     string      `json:"codec_name"`
	CodecType     string      `json:"codec_type"`
	Removed       bool        `json:"removed"`
	MapArgs       []string    `json:"mapArgs"`
	InputArgs     []string    `json:"inputArgs"`
	OutputArgs    []string    `json:"outputArgs"`
	StreamArgs    []string    `json:"streamArgs,omitempty"`
	ForceEncoding bool        `json:"forceEncoding"`
	Tags          *StreamTags `json:"tags,omitempty"`

	// Host fields such as width or disposition, carried through untouched.
	extra rawFields
}

func (s *Stream) UnmarshalJSON(data []byte) error {
	type plain Stream
	var p plain
	extra, err := decodeKeepingUnknown(data, &p)
	if err != nil {
		return err
	}
	*s = Stream(p)
	s.extra = extra
	return nil
}

func (s Stream) MarshalJSON() ([]byte, error) {
	type plain Stream
	return encodeWithUnknown(plain(s), s.extra)
}

// IsType reports whether the stream's codec type equals kind, ignoring case.
func (s *Stream) IsType(kind string) bool {
	return strings.EqualFold(s.CodecType, kind)
}

// Language returns the lower-cased language tag, or "" when untagged.
func (s *Stream) Language() string {
	if s.Tags == nil {
		return ""
	}
	return strings.ToLower(s.Tags.Language)
}

// Title returns the title tag, or "" when absent.
func (s *Stream) Title() string {
	if s.Tags == nil {
		return ""
	}
	return s.Tags.Title
}

// FFmpegCommand is the in-progress ffmpeg invocation shared by command plugins.
type FFmpegCommand struct {
	Init                  bool     `json:"init"`
	InputFiles            []string `json:"inputFiles"`
	Streams               []Stream `json:"streams"`
	Container             string   `json:"container"`
	HardwareDecoding      bool     `json:"hardwareDecoding"`
	ShouldProcess         bool     `json:"shouldProcess"`
	OverallInputArguments []string `json:"overallInputArguments"`
	OverallOuputArguments []string `json:"overallOuputArguments"`

	extra rawFields
}

func (c *FFmpegCommand) UnmarshalJSON(data []byte) error {
	type plain FFmpegCommand
	var p plain
	extra, err := decodeKeepingUnknown(data, &p)
	if err != nil {
		return err
	}
	*c = FFmpegCommand(p)
	c.extra = extra
	return nil
}

func (c FFmpegCommand) MarshalJSON() ([]byte, error) {
	type plain FFmpegCommand
	return encodeWithUnknown(plain(c), c.extra)
}

// FirstStreamOfType returns a pointer into Streams for the first stream whose
// codec type matches kind, or nil. Edits through the pointer are visible to
// every holder of the descriptor.
func (c *FFmpegCommand) FirstStreamOfType(kind string) *Stream {
	for i := range c.Streams {
		if c.Streams[i].IsType(kind) {
			return &c.Streams[i]
		}
	}
	return nil
}

// StreamsOfType returns pointers to every stream matching kind, in
// descriptor order.
func (c *FFmpegCommand) StreamsOfType(kind string) []*Stream {
	var out []*Stream
	for i := range c.Streams {
		if c.Streams[i].IsType(kind) {
			out = append(out, &c.Streams[i])
		}
	}
	return out
}
