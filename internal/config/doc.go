// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (OS-specific config directory, e.g. ~/.config/todo/todo.toml)
// 3. Project config file (todo.toml or .todo.toml in the working directory)
// 4. Environment variables (TODO_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// The defaults reproduce the tool's stock behavior exactly: the store
// file is todo.txt in the working directory and logging is quiet.
package config
