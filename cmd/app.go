// Package cmd implements the tsx command line application: statistics on
// brokerage export files.
package cmd

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tradestats"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

const (
	EnvFile      = "TSX_FILE"
	EnvLogLevel  = "TSX_LOG_LEVEL"
	EnvLogFormat = "TSX_LOG_FORMAT"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	c.Register(&topicCmd{}, "")

	c.Register(newGainsCmd(), "realized gains")
	c.Register(newPeriodsCmd(), "realized gains")
	c.Register(newTradesCmd(), "realized gains")

	c.Register(newSummaryCmd(), "transactions")
	c.Register(newPositionsCmd(), "transactions")
	c.Register(newSymbolsCmd(), "transactions")
	c.Register(newActionsCmd(), "transactions")
	c.Register(newDailyCmd(), "transactions")
	c.Register(newTransactionsCmd(), "transactions")
}

// IsRegistered reports whether name is a subcommand of c.
func IsRegistered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		found = found || cmd.Name() == name
	})
	return found
}

// Setup loads the ".env" file of the working directory, if any, into the
// environment and installs the default logger configured by $TSX_LOG_LEVEL
// and $TSX_LOG_FORMAT.
func Setup() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	logger, err := NewLogger(stderr, os.Getenv(EnvLogLevel), os.Getenv(EnvLogFormat))
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

// NewLogger returns a logger writing to w.
//
// level is one of debug, info, warn or error, and defaults to error: skipped
// rows are already part of every report. format is text (default) or json.
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl := slog.LevelError
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
		}
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid %s %q: want text or json", EnvLogFormat, format)
	}
}

// exportFlags are the flags of the commands reading an export file.
type exportFlags struct {
	ext  string // extension of the expected export
	file string
	json bool
}

func (e *exportFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&e.file, "f", os.Getenv(EnvFile), fmt.Sprintf("Export file to read (%s). Defaults to $%s.", e.ext, EnvFile))
	f.BoolVar(&e.json, "json", false, "Print JSON instead of markdown.")
}

// load imports the export file, printing errors to stderr.
func (e *exportFlags) load() (*tradestats.Export, subcommands.ExitStatus) {
	if e.file == "" {
		fmt.Fprintf(stderr, "Error: missing export file, use -f <file%s> or set $%s\n", e.ext, EnvFile)
		return nil, subcommands.ExitUsageError
	}
	if ext := strings.ToLower(filepath.Ext(e.file)); ext != e.ext {
		fmt.Fprintf(stderr, "Error: %q is not a %s export\n", e.file, e.ext)
		return nil, subcommands.ExitUsageError
	}
	f, err := os.Open(e.file)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	defer f.Close()

	export, err := tradestats.Import(filepath.Base(e.file), f)
	if err != nil {
		slog.Debug("import failed", "file", e.file, "error", err)
		fmt.Fprintf(stderr, "Error: %s\n", tradestats.Reason(err))
		return nil, subcommands.ExitFailure
	}
	return export, subcommands.ExitSuccess
}

// trades loads a realized gains export.
func (e *exportFlags) trades() (*tradestats.TradeFile, subcommands.ExitStatus) {
	export, status := e.load()
	if status != subcommands.ExitSuccess {
		return nil, status
	}
	return export.Trades, status
}

// transactions loads a brokerage transactions export.
func (e *exportFlags) transactions() (*tradestats.TransactionFile, subcommands.ExitStatus) {
	export, status := e.load()
	if status != subcommands.ExitSuccess {
		return nil, status
	}
	return export.Transactions, status
}

// print prints v as JSON if -json was set, or the markdown report otherwise.
func (e *exportFlags) print(v any, md func() string) subcommands.ExitStatus {
	if !e.json {
		printMarkdown(md())
		return subcommands.ExitSuccess
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(stderr, "Error encoding JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders md for the terminal, or prints it as is when stdout
// is not a terminal. $GLAMOUR_STYLE selects the style.
func printMarkdown(md string) {
	if isTerminal(stdout) {
		r, err := glamour.NewTermRenderer(glamour.WithEnvironmentConfig(), glamour.WithWordWrap(120))
		if err == nil {
			var out string
			if out, err = r.Render(md); err == nil {
				fmt.Fprint(stdout, out)
				return
			}
		}
		slog.Warn("cannot render markdown", "error", err)
	}
	fmt.Fprint(stdout, md)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
