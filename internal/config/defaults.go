package config

const (
	defaultEndpoint  = "[::1]:8080"
	defaultLogLevel  = "warn"
	defaultLogFormat = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Endpoint: defaultEndpoint,
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
