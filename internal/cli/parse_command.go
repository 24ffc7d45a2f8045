package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mph-llm-experiments/adate/internal/chrono"
)

// anchorFlags are the window overrides shared by parse, batch and tui.
type anchorFlags struct {
	context       string
	min           string
	max           string
	minConfidence string
}

func (f *anchorFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.context, "context", "", "Context date used to break ties (default today)")
	fs.StringVar(&f.min, "min", "", "Earliest acceptable date")
	fs.StringVar(&f.max, "max", "", "Latest acceptable date")
	fs.StringVar(&f.minConfidence, "min-confidence", "", "Reject results below this confidence (none, low, medium, high)")
}

// threshold returns the flag value, or fallback when the flag is unset.
func (f *anchorFlags) threshold(fallback chrono.Confidence) (chrono.Confidence, error) {
	if f.minConfidence == "" {
		return fallback, nil
	}
	return chrono.ParseConfidence(f.minConfidence)
}

// ParseCommand interprets a single string.
func (a *App) ParseCommand() *Command {
	var af anchorFlags

	cmd := &Command{
		Name:        "parse",
		Usage:       "adate parse <text> [--context D] [--min D] [--max D] [--min-confidence C]",
		Description: "Interpret one numeric date",
		Flags:       flag.NewFlagSet("parse", flag.ContinueOnError),
	}
	af.register(cmd.Flags)

	cmd.Run = func(c *Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("date text required")
		}
		anchors, err := a.anchors(af.context, af.min, af.max)
		if err != nil {
			return err
		}
		minConf, err := af.threshold(a.cfg.Output.MinConfidence)
		if err != nil {
			return err
		}

		input := strings.TrimSpace(strings.Join(args, " "))
		rep := newReport(input, anchors.Interpret(input), minConf)

		handled, err := encode(a.Stdout, a.outputFormat(), rep)
		if err != nil {
			return err
		}
		switch {
		case handled:
		case a.flags.Quiet:
			if rep.Accepted {
				fmt.Fprintln(a.Stdout, rep.Date)
			}
		default:
			printReport(a.Stdout, rep)
		}

		if !rep.Accepted {
			return errRejected
		}
		return nil
	}

	return cmd
}

// BatchCommand interprets one string per line.
func (a *App) BatchCommand() *Command {
	var af anchorFlags

	cmd := &Command{
		Name:        "batch",
		Usage:       "adate batch [file] [--context D] [--min D] [--max D] [--min-confidence C]",
		Description: "Interpret one date per line from a file or stdin",
		Flags:       flag.NewFlagSet("batch", flag.ContinueOnError),
	}
	af.register(cmd.Flags)

	cmd.Run = func(c *Command, args []string) error {
		anchors, err := a.anchors(af.context, af.min, af.max)
		if err != nil {
			return err
		}
		minConf, err := af.threshold(a.cfg.Output.MinConfidence)
		if err != nil {
			return err
		}

		in := a.Stdin
		if len(args) > 0 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()
			in = f
		}

		reports := []Report{}
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			reports = append(reports, newReport(line, anchors.Interpret(line), minConf))
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		rejected := 0
		for _, rep := range reports {
			if !rep.Accepted {
				rejected++
			}
		}
		a.log.Debug("batch: %d lines, %d rejected", len(reports), rejected)

		handled, err := encode(a.Stdout, a.outputFormat(), reports)
		if err != nil {
			return err
		}
		if !handled {
			printTable(a.Stdout, reports, a.flags.Quiet)
			if !a.flags.Quiet {
				fmt.Fprintf(a.Stdout, "\n%d interpreted, %d rejected\n", len(reports)-rejected, rejected)
			}
		}

		if rejected > 0 {
			return errRejected
		}
		return nil
	}

	return cmd
}

func printTable(w io.Writer, reports []Report, quiet bool) {
	if !quiet {
		fmt.Fprintf(w, "%-20s %-10s %-22s %s\n", "INPUT", "DATE", "FORMAT", "CONFIDENCE")
	}
	for _, rep := range reports {
		date := rep.Date
		if date == "" {
			date = "-"
		}
		conf := confidenceColor(rep.Confidence)
		line := fmt.Sprintf("%-20s %-10s %-22s ", rep.Input, date, rep.Format)
		if !rep.Accepted {
			fmt.Fprintln(w, noneColor.Sprint(line+confidenceName(rep.Confidence)))
			continue
		}
		fmt.Fprintln(w, line+conf.Sprint(confidenceName(rep.Confidence)))
	}
}
