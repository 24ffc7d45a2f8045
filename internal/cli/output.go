package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/mph-llm-experiments/adate/internal/chrono"
	"github.com/mph-llm-experiments/adate/internal/clock"
	"github.com/mph-llm-experiments/adate/internal/config"
)

// Report is the printable view of one interpretation.
type Report struct {
	Input      string            `json:"input" yaml:"input"`
	Date       string            `json:"date,omitempty" yaml:"date,omitempty"`
	Format     string            `json:"format" yaml:"format"`
	Code       int               `json:"code" yaml:"code"`
	Confidence chrono.Confidence `json:"confidence" yaml:"confidence"`
	Accepted   bool              `json:"accepted" yaml:"accepted"`
	// Components are month, day and year placed back in source order.
	Components []int `json:"components,omitempty" yaml:"components,omitempty"`
	// UnixMilli is midnight UTC of Date, the form accepted by "@ms" anchors.
	UnixMilli int64 `json:"unix_ms,omitempty" yaml:"unix_ms,omitempty"`
}

func newReport(input string, r chrono.Result, minConfidence chrono.Confidence) Report {
	rep := Report{
		Input:      input,
		Format:     r.Format.String(),
		Code:       r.Format.Code(),
		Confidence: r.Confidence,
		Accepted:   r.AtLeast(minConfidence),
	}
	if layout, ok := r.Format.Layout(); ok {
		rep.Date = r.Date.String()
		rep.Components = layout.Arrange(int(r.Date.Month), r.Date.Day, r.Date.Year)
		rep.UnixMilli = clock.UnixMilli(r.Date.Time(time.UTC))
	}
	return rep
}

var (
	highColor   = color.New(color.FgGreen, color.Bold)
	mediumColor = color.New(color.FgYellow)
	lowColor    = color.New(color.FgMagenta)
	noneColor   = color.New(color.FgRed)
)

func confidenceColor(c chrono.Confidence) *color.Color {
	switch c {
	case chrono.ConfidenceHigh:
		return highColor
	case chrono.ConfidenceMedium:
		return mediumColor
	case chrono.ConfidenceLow:
		return lowColor
	default:
		return noneColor
	}
}

// encode writes v as JSON or YAML. It reports false for text output.
func encode(w io.Writer, format config.OutputFormat, v interface{}) (bool, error) {
	switch format {
	case config.OutputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return true, fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return true, err
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return true, enc.Close()
	default:
		return false, nil
	}
}

func printReport(w io.Writer, rep Report) {
	conf := confidenceColor(rep.Confidence)
	date := rep.Date
	if date == "" {
		date = "-"
	}
	fmt.Fprintf(w, "Input:      %s\n", rep.Input)
	fmt.Fprintf(w, "Date:       %s\n", date)
	fmt.Fprintf(w, "Format:     %s (%d)\n", rep.Format, rep.Code)
	fmt.Fprintf(w, "Confidence: %s\n", conf.Sprint(confidenceName(rep.Confidence)))
	if len(rep.Components) > 0 {
		fmt.Fprintf(w, "Components: %v\n", rep.Components)
	}
	if !rep.Accepted {
		fmt.Fprintln(w, noneColor.Sprint("Rejected"))
	}
}

func confidenceName(c chrono.Confidence) string {
	return strings.ToLower(c.String())
}
