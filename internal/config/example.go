package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# todo configuration file
# Values can be overridden by environment variables (TODO_*) or CLI flags

# Store file (relative paths resolve against the working directory)
store_file = "todo.txt"

# Log level: debug, info, warn, error
log_level = "warn"

# Log format: text, json, logfmt
log_format = "text"

# Include timestamps in log output
log_timestamps = false
`
}
