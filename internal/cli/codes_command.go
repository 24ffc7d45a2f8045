package cli

import (
	"flag"
	"fmt"

	"github.com/mph-llm-experiments/adate/internal/chrono"
)

type codeEntry struct {
	Code int    `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
	OK   bool   `json:"ok" yaml:"ok"`
}

// CodesCommand lists the legacy integer format codes.
func (a *App) CodesCommand() *Command {
	return &Command{
		Name:        "codes",
		Usage:       "adate codes",
		Description: "List format codes and their names",
		Flags:       flag.NewFlagSet("codes", flag.ContinueOnError),
		Run: func(c *Command, args []string) error {
			entries := formatCodes()
			handled, err := encode(a.Stdout, a.outputFormat(), entries)
			if err != nil || handled {
				return err
			}
			for _, e := range entries {
				name := e.Name
				if !e.OK {
					name = noneColor.Sprint(name)
				}
				fmt.Fprintf(a.Stdout, "%4d  %s\n", e.Code, name)
			}
			return nil
		},
	}
}

func formatCodes() []codeEntry {
	var entries []codeEntry
	for f := chrono.Unspecified; f <= chrono.InvalidDate; f++ {
		format := chrono.Failed(f)
		entries = append(entries, codeEntry{Code: format.Code(), Name: format.String()})
	}
	for _, l := range chrono.Layouts {
		format := chrono.Resolved(l)
		entries = append(entries, codeEntry{Code: format.Code(), Name: format.String(), OK: true})
	}
	return entries
}
