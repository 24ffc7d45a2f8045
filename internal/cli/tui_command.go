package cli

import (
	"flag"

	"github.com/mph-llm-experiments/adate/internal/tui"
)

// TUICommand opens the interactive interpreter.
func (a *App) TUICommand() *Command {
	var af anchorFlags

	cmd := &Command{
		Name:        "tui",
		Usage:       "adate tui [--context D] [--min D] [--max D] [--min-confidence C]",
		Description: "Interpret dates interactively",
		Flags:       flag.NewFlagSet("tui", flag.ContinueOnError),
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
		return tui.Run(tui.New(anchors, minConf))
	}

	return cmd
}
