// Package cli implements the adate command line.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/mph-llm-experiments/adate/internal/anchor"
	"github.com/mph-llm-experiments/adate/internal/chrono"
	"github.com/mph-llm-experiments/adate/internal/clock"
	"github.com/mph-llm-experiments/adate/internal/config"
	"github.com/mph-llm-experiments/adate/internal/logging"
)

// errRejected signals that a result failed or fell below the minimum
// confidence. It maps to exit status 2 and prints nothing extra.
var errRejected = errors.New("rejected")

// Command is one adate subcommand.
type Command struct {
	Name        string
	Usage       string
	Description string
	Flags       *flag.FlagSet
	Run         func(c *Command, args []string) error
}

// GlobalFlags are accepted by every command.
type GlobalFlags struct {
	JSON    bool
	YAML    bool
	Quiet   bool
	NoColor bool
	Verbose bool
	Config  string
	Now     string
}

// App holds the streams and collaborators shared by all commands.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Clock  clock.Clock

	// ConfigPath is used when --config is not given.
	ConfigPath string

	flags GlobalFlags
	cfg   *config.Config
	log   *logging.Logger
}

// NewApp returns an App wired to the process streams and system clock.
func NewApp() *App {
	return &App{
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Clock:      clock.System{},
		ConfigPath: config.DefaultPath(),
	}
}

func (a *App) commands() []*Command {
	return []*Command{
		a.ParseCommand(),
		a.BatchCommand(),
		a.FixCommand(),
		a.TUICommand(),
		a.CodesCommand(),
	}
}

// Run executes args (without the program name) and returns the exit status.
func (a *App) Run(args []string) int {
	root := flag.NewFlagSet("adate", flag.ContinueOnError)
	root.SetOutput(a.Stderr)
	a.addGlobalFlags(root)
	root.Usage = func() { a.printUsage() }

	if err := root.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	args = root.Args()
	if len(args) == 0 {
		a.printUsage()
		return 1
	}

	var cmd *Command
	for _, c := range a.commands() {
		if c.Name == args[0] {
			cmd = c
			break
		}
	}
	if cmd == nil {
		fmt.Fprintf(a.Stderr, "Error: unknown command %q\n", args[0])
		a.printUsage()
		return 1
	}

	err := a.execute(cmd, args[1:])
	if a.log != nil {
		_ = a.log.Close()
	}
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errRejected):
		return 2
	case errors.Is(err, flag.ErrHelp):
		return 0
	default:
		fmt.Fprintf(a.Stderr, "Error: %v\n", err)
		return 1
	}
}

func (a *App) execute(cmd *Command, args []string) error {
	if cmd.Flags == nil {
		cmd.Flags = flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	}
	cmd.Flags.SetOutput(a.Stderr)
	a.addGlobalFlags(cmd.Flags)
	cmd.Flags.Usage = func() {
		fmt.Fprintf(a.Stderr, "Usage: %s\n\n%s\n\nFlags:\n", cmd.Usage, cmd.Description)
		cmd.Flags.PrintDefaults()
	}

	positional, err := parseInterspersed(cmd.Flags, args)
	if err != nil {
		return err
	}
	if err := a.setup(); err != nil {
		return err
	}
	return cmd.Run(cmd, positional)
}

func (a *App) addGlobalFlags(fs *flag.FlagSet) {
	fs.BoolVar(&a.flags.JSON, "json", a.flags.JSON, "Output JSON")
	fs.BoolVar(&a.flags.YAML, "yaml", a.flags.YAML, "Output YAML")
	fs.BoolVar(&a.flags.Quiet, "quiet", a.flags.Quiet, "Suppress informational output")
	fs.BoolVar(&a.flags.NoColor, "no-color", a.flags.NoColor, "Disable colors")
	fs.BoolVar(&a.flags.Verbose, "verbose", a.flags.Verbose, "Log debug output")
	fs.StringVar(&a.flags.Config, "config", a.flags.Config, "Config file path")
	fs.StringVar(&a.flags.Now, "now", a.flags.Now, "Override the current date")
}

// parseInterspersed lets flags follow positional arguments.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

// setup loads config and applies the global flags.
func (a *App) setup() error {
	path := a.ConfigPath
	if a.flags.Config != "" {
		path = a.flags.Config
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	switch {
	case a.flags.NoColor || cfg.Output.Color == config.ColorNever:
		color.NoColor = true
	case cfg.Output.Color == config.ColorAlways:
		color.NoColor = false
	}

	if a.Clock == nil {
		a.Clock = clock.System{}
	}
	if a.flags.Now != "" {
		d, err := anchor.Parse(a.flags.Now, a.Clock)
		if err != nil {
			return fmt.Errorf("--now: %w", err)
		}
		a.Clock = clock.Fixed(d.Time(time.UTC))
	}

	log, err := logging.New(logging.Options{
		Out:     a.Stderr,
		Err:     a.Stderr,
		File:    cfg.Log.File,
		Verbose: a.flags.Verbose || cfg.Log.Verbose,
	})
	if err != nil {
		return err
	}
	a.log = log
	a.log.Debug("config %q, today %s", path, clock.Today(a.Clock))
	return nil
}

// anchors resolves the interpretation window. Empty strings fall back to
// today and the configured window.
func (a *App) anchors(context, min, max string) (chrono.Anchors, error) {
	anchors, err := anchor.Resolve(context, min, max, a.Clock, a.cfg.Window)
	if err != nil {
		return chrono.Anchors{}, err
	}
	if err := anchors.Validate(); err != nil {
		if !errors.Is(err, chrono.ErrContextOutsideRange) {
			return chrono.Anchors{}, err
		}
		a.log.Warn("%v", err)
	}
	a.log.Debug("anchors context=%s min=%s max=%s", anchors.Context, anchors.Min, anchors.Max)
	return anchors, nil
}

func (a *App) outputFormat() config.OutputFormat {
	switch {
	case a.flags.JSON:
		return config.OutputJSON
	case a.flags.YAML:
		return config.OutputYAML
	default:
		return a.cfg.Output.Format
	}
}

func (a *App) printUsage() {
	fmt.Fprintln(a.Stderr, "Usage: adate [flags] <command> [args]")
	fmt.Fprintln(a.Stderr)
	fmt.Fprintln(a.Stderr, "Commands:")
	for _, c := range a.commands() {
		fmt.Fprintf(a.Stderr, "  %-8s %s\n", c.Name, c.Description)
	}
	fmt.Fprintln(a.Stderr)
	fmt.Fprintln(a.Stderr, "Global flags: --json --yaml --quiet --no-color --verbose --config <path> --now <date>")
}

// splitList splits a comma separated flag value.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
