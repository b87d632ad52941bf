// Package cmd implements the CLI command structure for todo.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/MarkusG/todo-go/internal/apperr"
	"github.com/MarkusG/todo-go/internal/config"
	"github.com/MarkusG/todo-go/internal/logging"
	"github.com/MarkusG/todo-go/internal/todo"
	"github.com/MarkusG/todo-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the todo CLI.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand(os.Stdout)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	// Resolve verb and noun from the positional arguments
	remaining := fs.Args()
	if len(remaining) == 0 {
		return apperr.ErrNotEnoughArguments
	}
	verb := remaining[0]
	rest := remaining[1:]

	store := todo.NewStore(cfg.StoreFile)
	logger.Debug("resolved store", "path", store.Path, "verb", verb)

	return dispatch(ctx, verb, rest, store, cfg, logger)
}

// dispatch routes a verb plus its remaining arguments to an operation.
// The noun, where one is needed, is the remaining arguments joined with
// single spaces.
func dispatch(ctx context.Context, verb string, rest []string, store *todo.Store, cfg *config.Config, logger *log.Logger) error {
	switch verb {
	case "list":
		return listCommand(os.Stdout, store, logger)
	case "add":
		if len(rest) == 0 {
			return apperr.ErrNotEnoughArguments
		}
		return addCommand(store, strings.Join(rest, " "), logger)
	case "export":
		return store.Export(os.Stdout)
	case "import":
		if len(rest) == 0 {
			return apperr.ErrNotEnoughArguments
		}
		return importCommand(os.Stdout, store, strings.Join(rest, " "), logger)
	case "doctor":
		return doctorCommand(os.Stdout, store, cfg)
	case "tui":
		return ui.RunTUI(ctx, store)
	case "config":
		return configCommand(os.Stdout, cfg, rest)
	case "version", "--version":
		return versionCommand(os.Stdout)
	case "help", "--help":
		printUsage(nil, os.Stdout)
		return nil
	default:
		return apperr.ErrInvalidCommand
	}
}

// listCommand prints all entries sorted by index, one per line.
func listCommand(w io.Writer, store *todo.Store, logger *log.Logger) error {
	entries, err := store.List()
	if err != nil {
		return err
	}
	logger.Debug("parsed store", "entries", len(entries))

	for _, e := range entries {
		fmt.Fprintf(w, "%d. %s\n", e.Index, e.Content)
	}
	return nil
}

// addCommand appends a new entry with the next available index.
func addCommand(store *todo.Store, content string, logger *log.Logger) error {
	entry, err := store.Add(content)
	if err != nil {
		return err
	}
	logger.Debug("appended entry", "index", entry.Index)
	return nil
}

// importCommand appends entries from a JSON export document.
func importCommand(w io.Writer, store *todo.Store, path string, logger *log.Logger) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: open import file: %w", apperr.ErrIO, err)
	}
	defer file.Close()

	n, err := store.Import(file)
	if err != nil {
		return err
	}
	logger.Debug("imported entries", "count", n, "from", path)
	fmt.Fprintf(w, "Imported %d entries\n", n)
	return nil
}

// doctorCommand checks the store file and effective configuration.
func doctorCommand(w io.Writer, store *todo.Store, cfg *config.Config) error {
	fmt.Fprintln(w, "Todo Doctor")
	fmt.Fprintln(w, "===========")
	fmt.Fprintln(w)

	allOK := true

	fmt.Fprintf(w, "Working directory: %s\n", cfg.WorkDir)
	if _, err := os.Stat(cfg.WorkDir); err != nil {
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		allOK = false
	} else {
		fmt.Fprintln(w, "  ✅ OK")
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Store file: %s\n", store.Path)
	info, err := os.Stat(store.Path)
	switch {
	case os.IsNotExist(err):
		fmt.Fprintln(w, "  ⚠️  Not found (will be created on first add)")
	case err != nil:
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		allOK = false
	case info.IsDir():
		fmt.Fprintln(w, "  ❌ Error: path is a directory")
		allOK = false
	default:
		fmt.Fprintln(w, "  ✅ OK")
		entries, loadErr := store.List()
		if loadErr != nil {
			fmt.Fprintf(w, "  ❌ Load error: %v\n", loadErr)
			allOK = false
		} else {
			fmt.Fprintf(w, "  ✅ Valid (%d entries, next index %d)\n",
				len(entries), todo.NextIndex(entries))
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Log level: %s, format: %s\n", cfg.LogLevel, cfg.LogFormat)
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		fmt.Fprintf(w, "  ❌ %v\n", err)
		allOK = false
	} else if _, err := logging.ParseFormat(cfg.LogFormat); err != nil {
		fmt.Fprintf(w, "  ❌ %v\n", err)
		allOK = false
	} else {
		fmt.Fprintln(w, "  ✅ OK")
	}
	fmt.Fprintln(w)

	if allOK {
		fmt.Fprintln(w, "✅ All checks passed!")
		return nil
	}
	fmt.Fprintln(w, "⚠️  Some checks failed.")
	return fmt.Errorf("doctor checks failed")
}

// configCommand prints the effective configuration, or writes an
// example project config file with -init.
func configCommand(w io.Writer, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("todo config", flag.ContinueOnError)
	initFile := fs.Bool("init", false, "Write an example todo.toml in the working directory")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *initFile {
		if _, err := os.Stat("todo.toml"); err == nil {
			return fmt.Errorf("todo.toml already exists")
		}
		if err := os.WriteFile("todo.toml", []byte(config.ExampleConfig()), 0644); err != nil {
			return fmt.Errorf("%w: write todo.toml: %w", apperr.ErrIO, err)
		}
		fmt.Fprintln(w, "Wrote todo.toml")
		return nil
	}

	fmt.Fprintf(w, "store_file = %q\n", cfg.StoreFile)
	fmt.Fprintf(w, "log_level = %q\n", cfg.LogLevel)
	fmt.Fprintf(w, "log_format = %q\n", cfg.LogFormat)
	fmt.Fprintf(w, "log_timestamps = %t\n", cfg.LogTimestamps)
	return nil
}

// versionCommand prints version information.
func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "todo version %s\n", Version)
	return nil
}

// newLogger builds the stderr logger from the config.
func newLogger(cfg *config.Config) (*log.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return logging.New(os.Stderr, logging.Options{
		Level:           level,
		Formatter:       format,
		ReportTimestamp: cfg.LogTimestamps,
	}), nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "todo - A plain-text todo list manager")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  todo [options] <command> [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  list             Print all entries sorted by index")
	fmt.Fprintln(w, "  add <text...>    Append an entry with the next available index")
	fmt.Fprintln(w, "  export           Write the store as JSON to stdout")
	fmt.Fprintln(w, "  import <file>    Append entries from a JSON export document")
	fmt.Fprintln(w, "  doctor           Check the store file and configuration")
	fmt.Fprintln(w, "  tui              Interactive read-only viewer")
	fmt.Fprintln(w, "  config [-init]   Show effective config, or write an example file")
	fmt.Fprintln(w, "  version          Show version information")
	fmt.Fprintln(w, "  help             Show this help message")
	if fs != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options:")
		fs.SetOutput(w)
		fs.PrintDefaults()
	}
}
