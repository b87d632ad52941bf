package config

// Default values.
const (
	DefaultStoreFile = "todo.txt"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for the tool.
type Config struct {
	// StoreFile is the path to the todo store file. Relative paths
	// resolve against the working directory.
	StoreFile string `toml:"store_file"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`  // debug, info, warn, error
	LogFormat     string `toml:"log_format"` // text, json, logfmt
	LogTimestamps bool   `toml:"log_timestamps"`

	// Working directory (computed)
	WorkDir string `toml:"-"`
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.StoreFile = DefaultStoreFile
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
}
