package flow

import "subburn/internal/services"

// ErrCommandNotInitialized is returned by ffmpeg command plugins that run
// outside a Begin Command / Execute pair. The text is shown to users as is.
var ErrCommandNotInitialized = services.Fixed(services.ErrSequencing,
	`FFmpeg command plugins not used correctly. `+
		`Please use the "Begin Command" plugin before using this plugin. `+
		`Afterwards, use the "Execute" plugin to execute the built FFmpeg command. `+
		`Once the "Execute" plugin has been used, you need to use a new "Begin Command" `+
		`plugin to start a new FFmpeg command.`)

// CheckFFmpegCommandInit fails unless args carry an initialized ffmpeg
// command descriptor.
func CheckFFmpegCommandInit(args *InputArgs) error {
	if args == nil || args.Variables == nil {
		return ErrCommandNotInitialized
	}
	cmd := args.Variables.FFmpegCommand
	if cmd == nil || !cmd.Init {
		return ErrCommandNotInitialized
	}
	return nil
}
