package jobfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/flock"

	"subburn/internal/burnsubs"
	"subburn/internal/flow"
	"subburn/internal/jobfile"
	"subburn/internal/services"
)

const sampleJob = `{
  "inputs": {"language_tags": "eng"},
  "inputFileObj": {"_id": "/media/in.mkv", "container": "mkv"},
  "variables": {
    "flowFailed": false,
    "user": {},
    "ffmpegCommand": {
      "init": true,
      "inputFiles": ["/media/in.mkv"],
      "container": "mkv",
      "streams": [
        {"index": 0, "codec_type": "video", "codec_name": "h264", "removed": false, "mapArgs": ["-map", "0:0"], "inputArgs": [], "outputArgs": []}
      ]
    }
  }
}`

func TestReadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.json")
	if err := os.WriteFile(path, []byte(sampleJob), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	job, err := jobfile.Read(path, nil)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if job.Inputs["language_tags"] != "eng" {
		t.Fatalf("unexpected inputs: %v", job.Inputs)
	}
	if job.InputFileObj == nil || job.InputFileObj.ID != "/media/in.mkv" {
		t.Fatalf("unexpected file object: %+v", job.InputFileObj)
	}
	if _, ok := job.InputFileObj.Field("container"); !ok {
		t.Fatal("expected extra file object fields to be preserved")
	}
	cmd := job.Variables.FFmpegCommand
	if cmd == nil || !cmd.Init || len(cmd.Streams) != 1 {
		t.Fatalf("unexpected command: %+v", cmd)
	}
	if cmd.FirstStreamOfType(flow.CodecTypeVideo) == nil {
		t.Fatal("expected video stream")
	}
}

func TestReadFromStdin(t *testing.T) {
	job, err := jobfile.Read(jobfile.Stdin, strings.NewReader(`{"variables": {}}`))
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if job.Inputs == nil {
		t.Fatal("expected empty inputs map")
	}
	if job.Variables == nil || job.Variables.FFmpegCommand != nil {
		t.Fatalf("unexpected variables: %+v", job.Variables)
	}
}

func TestReadErrors(t *testing.T) {
	if _, err := jobfile.Read(filepath.Join(t.TempDir(), "missing.json"), nil); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := jobfile.Read(jobfile.Stdin, strings.NewReader("{")); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := jobfile.Read(jobfile.Stdin, nil); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error without stdin, got %v", err)
	}
}

func TestWriteReplacesFileAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "result.json")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	result := &jobfile.Result{
		OutputFileObj: flow.NewFileObject("/media/in.mkv"),
		OutputNumber:  1,
		Variables:     &flow.Variables{},
	}
	if err := jobfile.Write(context.Background(), path, result); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, `"outputNumber": 1`) || !strings.Contains(text, `"_id": "/media/in.mkv"`) {
		t.Fatalf("unexpected result file: %s", text)
	}
	if !strings.HasSuffix(text, "\n") {
		t.Fatal("expected trailing newline")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".tmp") {
			t.Fatalf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestWriteFailsWhileLockHeld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.json")

	holder := flock.New(path + ".lock")
	if err := holder.Lock(); err != nil {
		t.Fatalf("Lock failed: %v", err)
	}
	defer holder.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	if err := jobfile.Write(ctx, path, map[string]int{"a": 1}); err == nil {
		t.Fatal("expected write to fail while another holder owns the lock")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no file after failed write, got %v", err)
	}
}

func TestPluginRunKeepsHostEnvelopeFields(t *testing.T) {
	const hostJob = `{
  "inputs": {},
  "inputFileObj": {"_id": "/media/in.mkv", "file_size": 10},
  "variables": {
    "flowFailed": false,
    "user": {"note": "x"},
    "liveSizeCompare": {"enabled": false, "compareType": "subtract"},
    "ffmpegCommand": {
      "init": true,
      "isVideo": true,
      "inputFiles": ["/media/in.mkv"],
      "container": "mkv",
      "overallInputArguments": [],
      "overallOuputArguments": [],
      "streams": [
        {"index": 0, "codec_type": "video", "codec_name": "h264", "width": 1280, "disposition": {"default": 1}, "mapArgs": ["-map", "0:0"], "inputArgs": [], "outputArgs": []},
        {"index": 1, "codec_type": "subtitle", "codec_name": "subrip", "tags": {"language": "eng", "handler_name": "SubtitleHandler"}, "mapArgs": ["-map", "0:1"], "inputArgs": [], "outputArgs": []}
      ]
    }
  }
}`

	job, err := jobfile.Decode([]byte(hostJob))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	result, err := burnsubs.New().Run(job)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	data, err := jobfile.Encode(result)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	text := string(data)
	for _, want := range []string{
		`"liveSizeCompare"`,
		`"compareType": "subtract"`,
		`"isVideo": true`,
		`"width": 1280`,
		`"disposition"`,
		`"handler_name": "SubtitleHandler"`,
		`"file_size": 10`,
		`subtitles=filename='/media/in.mkv':si=0`,
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %s in encoded result:\n%s", want, text)
		}
	}
}
