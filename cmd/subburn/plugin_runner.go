package main

import (
	"context"
	"maps"

	"github.com/google/uuid"

	"subburn/internal/burnsubs"
	"subburn/internal/flow"
	"subburn/internal/jobfile"
	"subburn/internal/logging"
	"subburn/internal/services"
)

// runPlugin executes the burn-in plugin for job. Configured plugin defaults
// sit beneath the job's own inputs.
func (c *commandContext) runPlugin(ctx context.Context, job *jobfile.Job) (*jobfile.Result, error) {
	base, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	jobID := uuid.NewString()
	ctx = services.WithJobID(ctx, jobID)
	ctx = services.WithPlugin(ctx, burnsubs.ID)
	logger := logging.WithContext(ctx, logging.NewComponentLogger(base, "burnsubs"))

	var defaults map[string]any
	if cfg := c.configValue(); cfg != nil {
		defaults = cfg.PluginInputs()
	}
	// Run sees the layered inputs; the caller's job keeps its own.
	run := *job
	run.Inputs = layerInputs(defaults, job.Inputs)
	run.JobLog = logging.JobLog(logger)

	logger.Debug("plugin run starting",
		logging.Int("inputs", len(run.Inputs)),
		logging.Bool("config_defaults", len(defaults) > 0),
	)
	result, err := burnsubs.New().Run(&run)
	if err != nil {
		logger.Error("plugin run failed",
			logging.Error(err),
			logging.String("error_category", services.Category(err)),
		)
		return nil, err
	}
	logger.Info("plugin run completed", logging.Int("output_number", result.OutputNumber))
	return result, nil
}

func layerInputs(defaults, inputs map[string]any) map[string]any {
	out := make(map[string]any, len(defaults)+len(inputs))
	maps.Copy(out, defaults)
	for key, value := range inputs {
		if value == nil {
			continue
		}
		out[key] = value
	}
	return out
}

// nextJob turns a plugin result into the job envelope the following plugin
// in the flow would receive.
func nextJob(previous *jobfile.Job, result *jobfile.Result) *jobfile.Job {
	return &flow.InputArgs{
		Inputs:       previous.Inputs,
		Variables:    result.Variables,
		InputFileObj: result.OutputFileObj,
	}
}
