package jobfile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"subburn/internal/flow"
	"subburn/internal/services"
)

// Stdin is the path that selects the reader passed to Read.
const Stdin = "-"

const lockRetryDelay = 50 * time.Millisecond

// Job is the input envelope for one plugin invocation.
type Job = flow.InputArgs

// Result is the envelope a plugin invocation returns to the host.
type Result = flow.OutputArgs

// Read decodes a job from path, or from stdin when path is "-".
func Read(path string, stdin io.Reader) (*Job, error) {
	var (
		data []byte
		err  error
	)
	if path == Stdin {
		if stdin == nil {
			return nil, services.Wrap(services.ErrValidation, "jobfile", "read", "No stdin available", nil)
		}
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		if os.IsNotExist(err) {
			return nil, services.Wrap(services.ErrNotFound, "jobfile", "read", "Job file not found", err)
		}
		return nil, services.Wrap(services.ErrExternalTool, "jobfile", "read", "Failed to read job file", err)
	}
	return Decode(data)
}

// Decode parses a job envelope.
func Decode(data []byte) (*Job, error) {
	var job Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, services.Wrap(services.ErrValidation, "jobfile", "decode", "Invalid job JSON", err)
	}
	if job.Inputs == nil {
		job.Inputs = map[string]any{}
	}
	return &job, nil
}

// Encode renders v as indented JSON terminated by a newline.
func Encode(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "jobfile", "encode", "Failed to encode envelope", err)
	}
	return append(data, '\n'), nil
}

// Write atomically replaces path with the JSON encoding of v.
func Write(ctx context.Context, path string, v any) error {
	data, err := Encode(v)
	if err != nil {
		return err
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return services.Wrap(services.ErrExternalTool, "jobfile", "lock", "Failed to lock job file", err)
	}
	if !locked {
		return services.Wrap(services.ErrExternalTool, "jobfile", "lock", "Job file is locked by another process", nil)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // cleanup on failure
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
