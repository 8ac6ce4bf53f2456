package config

const (
	defaultConfigPath            = "~/.config/subburn/config.toml"
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
	defaultFFprobeBinary         = "ffprobe"
	defaultFFprobeTimeoutSeconds = 60
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		FFprobe: FFprobe{
			Binary:         defaultFFprobeBinary,
			TimeoutSeconds: defaultFFprobeTimeoutSeconds,
		},
	}
}
