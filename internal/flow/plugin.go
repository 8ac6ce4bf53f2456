package flow

import (
	"encoding/json"
	"maps"
)

// Plugin is the contract the workflow engine needs from each flow plugin.
type Plugin interface {
	Details() Details
	Run(*InputArgs) (*OutputArgs, error)
}

// Variables are shared across every plugin of a flow run.
type Variables struct {
	FFmpegCommand *FFmpegCommand    `json:"ffmpegCommand,omitempty"`
	FlowFailed    bool              `json:"flowFailed"`
	User          map[string]string `json:"user"`

	extra rawFields
}

func (v *Variables) UnmarshalJSON(data []byte) error {
	type plain Variables
	var p plain
	extra, err := decodeKeepingUnknown(data, &p)
	if err != nil {
		return err
	}
	*v = Variables(p)
	v.extra = extra
	return nil
}

func (v Variables) MarshalJSON() ([]byte, error) {
	type plain Variables
	return encodeWithUnknown(plain(v), v.extra)
}

// InputArgs is the envelope handed to a plugin invocation.
type InputArgs struct {
	Inputs       map[string]any `json:"inputs"`
	Variables    *Variables     `json:"variables"`
	InputFileObj *FileObject    `json:"inputFileObj"`
	JobLog       func(string)   `json:"-"`
}

// Log forwards message to the job log when one is attached.
func (a *InputArgs) Log(message string) {
	if a == nil || a.JobLog == nil {
		return
	}
	a.JobLog(message)
}

// OutputArgs is returned by a plugin to tell the engine where to go next.
type OutputArgs struct {
	OutputFileObj *FileObject `json:"outputFileObj"`
	OutputNumber  int         `json:"outputNumber"`
	Variables     *Variables  `json:"variables"`
}

// FileObject is the engine's record for the file moving through the flow.
// Only the identifier is interpreted; every other field is carried through
// untouched.
type FileObject struct {
	ID     string
	fields rawFields
}

// NewFileObject returns a file object identified by id.
func NewFileObject(id string) *FileObject {
	return &FileObject{ID: id}
}

// Field returns a raw engine field other than _id.
func (f *FileObject) Field(key string) (json.RawMessage, bool) {
	raw, ok := f.fields[key]
	return raw, ok
}

func (f *FileObject) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	f.ID = ""
	if id, ok := raw["_id"]; ok {
		if err := json.Unmarshal(id, &f.ID); err != nil {
			return err
		}
		delete(raw, "_id")
	}
	f.fields = raw
	return nil
}

func (f FileObject) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(f.fields)+1)
	maps.Copy(out, f.fields)
	id, err := json.Marshal(f.ID)
	if err != nil {
		return nil, err
	}
	out["_id"] = id
	return json.Marshal(out)
}

// LoadDefaultValues returns a copy of inputs where every input declared in
// details but absent (or null) holds its declared default. The caller's map
// is never modified.
func LoadDefaultValues(inputs map[string]any, details Details) map[string]any {
	out := make(map[string]any, len(details.Inputs)+len(inputs))
	maps.Copy(out, inputs)
	for _, input := range details.Inputs {
		if value, ok := out[input.Name]; !ok || value == nil {
			out[input.Name] = input.DefaultValue
		}
	}
	return out
}
