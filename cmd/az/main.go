// Package main is the entry point for the az editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"maps"
	"os"
	"os/signal"
	"slices"
	"strings"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/dshills/az/internal/app"
	"github.com/dshills/az/internal/config"
	"github.com/dshills/az/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli := parseFlags(os.Args[1:])

	opts, err := resolveOptions(cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: az needs a terminal")
		return 1
	}

	// Create application
	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	// Create terminal backend
	screen, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(screen); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	// Signals go through the event loop so the terminal is restored.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, unix.SIGINT, unix.SIGTERM, unix.SIGHUP)
	defer signal.Stop(signals)

	go func() {
		for sig := range signals {
			application.Interrupt(sig)
		}
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// cliOptions holds the parsed command line.
type cliOptions struct {
	configPath string
	debug      bool
	logPath    string
	logLevel   string
	readOnly   bool
	noWatch    bool
	colors     colorFlag
	filename   string
}

func parseFlags(args []string) cliOptions {
	var cli cliOptions
	var showVersion bool
	var showHelp bool

	fs := flag.NewFlagSet("az", flag.ExitOnError)
	fs.StringVar(&cli.configPath, "config", "", "Path to configuration file (TOML or YAML)")
	fs.StringVar(&cli.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.BoolVar(&cli.debug, "debug", false, "Write a debug log to "+app.DefaultLogPath())
	fs.BoolVar(&cli.debug, "d", false, "Enable debug log (shorthand)")
	fs.StringVar(&cli.logPath, "log", "", "Write the log to this file")
	fs.StringVar(&cli.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&cli.readOnly, "readonly", false, "Open the file read-only")
	fs.BoolVar(&cli.readOnly, "R", false, "Open the file read-only (shorthand)")
	fs.BoolVar(&cli.noWatch, "no-watch", false, "Do not report changes other programs make to the file")
	fs.Var(&cli.colors, "color", "Theme color as name=#rrggbb (gutter, selection, status, error); repeatable")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "az - a small terminal text editor\n\n")
		fmt.Fprintf(out, "Usage: az [options] [file]\n\n")
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nKeys:\n")
		fmt.Fprintf(out, "  ^S save  ^Q quit  ^F find  ^R replace  ^Z undo  ^Y redo\n")
		fmt.Fprintf(out, "  ^A select all  ^C copy  ^X cut  ^V paste  ^K cut line  ^U paste cut\n")
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  az                          Open an unnamed document\n")
		fmt.Fprintf(out, "  az notes.txt                Open a file\n")
		fmt.Fprintf(out, "  az -R config.json           Open a file read-only\n")
		fmt.Fprintf(out, "  az -color gutter=#5f87af x  Override a theme color\n")
	}

	_ = fs.Parse(args)

	if showHelp {
		fs.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("az %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if fs.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: az edits one file at a time")
		os.Exit(2)
	}
	cli.filename = fs.Arg(0)

	return cli
}

// resolveOptions layers the command line over the configuration file and
// environment.
func resolveOptions(cli cliOptions) (app.Options, error) {
	path := cli.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return app.Options{}, fmt.Errorf("config: %w", err)
	}

	if cli.logLevel != "" {
		cli.logLevel = strings.ToLower(cli.logLevel)
		if !slices.Contains(config.LogLevels, cli.logLevel) {
			return app.Options{}, fmt.Errorf("invalid log level %q (must be %s)", cli.logLevel, strings.Join(config.LogLevels, ", "))
		}
		cfg.Log.Level = cli.logLevel
	}
	if cli.logPath != "" {
		cfg.Log.Path = cli.logPath
	}

	colors := maps.Clone(cfg.Colors)
	maps.Copy(colors, cli.colors)

	return app.Options{
		Filename:  cli.filename,
		Debug:     cli.debug,
		LogPath:   cfg.Log.Path,
		LogLevel:  cfg.Log.Level,
		ReadOnly:  cli.readOnly,
		TabSize:   cfg.Editor.TabSize,
		UndoDepth: cfg.Editor.UndoDepth,
		StatusTTL: cfg.Editor.StatusTTL,
		Watch:     cfg.Editor.Watch && !cli.noWatch,
		Colors:    colors,
	}, nil
}

// colorFlag collects repeated -color name=hex flags.
type colorFlag map[string]string

func (c *colorFlag) String() string {
	if c == nil || len(*c) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(*c))
	for _, name := range slices.Sorted(maps.Keys(*c)) {
		pairs = append(pairs, name+"="+(*c)[name])
	}
	return strings.Join(pairs, ",")
}

func (c *colorFlag) Set(s string) error {
	name, hex, ok := strings.Cut(s, "=")
	if !ok || name == "" || hex == "" {
		return fmt.Errorf("want name=#rrggbb, got %q", s)
	}
	if *c == nil {
		*c = make(colorFlag)
	}
	(*c)[strings.ToLower(name)] = hex
	return nil
}
