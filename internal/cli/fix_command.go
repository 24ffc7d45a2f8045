package cli

import (
	"flag"
	"fmt"

	"github.com/mph-llm-experiments/adate/internal/chrono"
	"github.com/mph-llm-experiments/adate/internal/config"
	"github.com/mph-llm-experiments/adate/internal/frontmatter"
)

// fileChanges is the JSON/YAML view of one normalized file.
type fileChanges struct {
	File    string               `json:"file" yaml:"file"`
	Changes []frontmatter.Change `json:"changes,omitempty" yaml:"changes,omitempty"`
	Error   string               `json:"error,omitempty" yaml:"error,omitempty"`
}

// FixCommand rewrites frontmatter date fields as ISO dates.
func (a *App) FixCommand() *Command {
	var (
		dryRun        bool
		fields        string
		entityType    string
		context       string
		minConfidence string
	)

	cmd := &Command{
		Name:        "fix",
		Usage:       "adate fix <dir> [--fields a,b] [--type task] [--min-confidence C] [--context D] [--dry-run]",
		Description: "Normalize date fields in markdown frontmatter",
		Flags:       flag.NewFlagSet("fix", flag.ContinueOnError),
	}
	cmd.Flags.BoolVar(&dryRun, "dry-run", false, "Show what would be changed without making changes")
	cmd.Flags.StringVar(&fields, "fields", "", "Comma separated frontmatter fields (default from config)")
	cmd.Flags.StringVar(&entityType, "type", "", "Only files of this acore type, e.g. task")
	cmd.Flags.StringVar(&context, "context", "", "Context date used to break ties (default today)")
	cmd.Flags.StringVar(&minConfidence, "min-confidence", "", "Minimum confidence to rewrite a value (default from config)")

	cmd.Run = func(c *Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("directory required")
		}
		dir := args[0]

		anchors, err := a.anchors(context, "", "")
		if err != nil {
			return err
		}
		opts := frontmatter.Options{
			Fields:        a.cfg.Fix.Fields,
			Anchors:       anchors,
			MinConfidence: a.cfg.Fix.MinConfidence,
			DryRun:        dryRun,
		}
		if fields != "" {
			opts.Fields = splitList(fields)
		}
		if minConfidence != "" {
			if opts.MinConfidence, err = chrono.ParseConfidence(minConfidence); err != nil {
				return err
			}
		}

		paths, err := frontmatter.Scan(dir, entityType)
		if err != nil {
			return err
		}
		a.log.Debug("fix: %d files under %s, fields %v", len(paths), dir, opts.Fields)

		structured := a.outputFormat() != config.OutputText
		verb := "Fixed"
		if dryRun {
			verb = "Would fix"
		}

		var results []fileChanges
		fixed, skipped, failed := 0, 0, 0
		for _, path := range paths {
			changes, err := frontmatter.NormalizeFile(path, opts)
			if err != nil {
				failed++
				results = append(results, fileChanges{File: path, Error: err.Error()})
				if !structured {
					fmt.Fprintf(a.Stdout, "  ERROR: %v\n", err)
				}
				continue
			}
			if len(changes) == 0 {
				continue
			}
			results = append(results, fileChanges{File: path, Changes: changes})

			for _, ch := range changes {
				if ch.Applied {
					fixed++
				} else {
					skipped++
				}
				if structured {
					continue
				}
				switch {
				case ch.Applied && !a.flags.Quiet:
					fmt.Fprintf(a.Stdout, "  %s %s: %s %s -> %s (%s)\n",
						verb, path, ch.Field, ch.From, ch.To, confidenceName(ch.Confidence))
				case !ch.Applied:
					fmt.Fprintf(a.Stdout, "  SKIP %s: %s %q is %s with %s confidence\n",
						path, ch.Field, ch.From, ch.Format, confidenceName(ch.Confidence))
				}
			}
		}

		if structured {
			if results == nil {
				results = []fileChanges{}
			}
			_, err := encode(a.Stdout, a.outputFormat(), results)
			return err
		}

		if dryRun {
			fmt.Fprintf(a.Stdout, "\nDry run: would fix %d field(s), %d skipped, %d error(s)\n", fixed, skipped, failed)
		} else {
			fmt.Fprintf(a.Stdout, "\nFixed %d field(s), %d skipped, %d error(s)\n", fixed, skipped, failed)
		}
		if failed > 0 {
			return fmt.Errorf("%d file(s) could not be processed", failed)
		}
		return nil
	}

	return cmd
}
