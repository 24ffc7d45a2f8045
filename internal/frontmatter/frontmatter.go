// Package frontmatter rewrites loosely formatted date fields in the YAML
// frontmatter of markdown files as ISO dates.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mph-llm-experiments/adate/internal/chrono"
)

const delimiter = "---"

// ErrUnterminated is returned when an opening delimiter has no match.
var ErrUnterminated = errors.New("unterminated frontmatter")

// Document is a file split into its frontmatter and body.
type Document struct {
	meta    *yaml.Node
	body    string
	newline string
}

// Change describes one date field visited by NormalizeDates.
type Change struct {
	Field      string            `json:"field" yaml:"field"`
	From       string            `json:"from" yaml:"from"`
	To         string            `json:"to,omitempty" yaml:"to,omitempty"`
	Format     chrono.Format     `json:"format" yaml:"format"`
	Confidence chrono.Confidence `json:"confidence" yaml:"confidence"`
	// Applied is false when the value was left alone because the
	// interpretation failed or fell below the confidence threshold.
	Applied bool `json:"applied" yaml:"applied"`
}

// Split parses data into frontmatter and body. Files without frontmatter
// yield a Document whose HasFrontmatter is false. The closing delimiter
// must be a line of its own.
func Split(data []byte) (*Document, error) {
	content := string(data)
	newline := "\n"
	switch {
	case strings.HasPrefix(content, delimiter+"\r\n"):
		newline = "\r\n"
	case strings.HasPrefix(content, delimiter+"\n"):
	default:
		return &Document{body: content, newline: newline}, nil
	}
	rest := content[len(delimiter)+len(newline):]

	offset := 0
	for {
		line, _, found := strings.Cut(rest[offset:], "\n")
		if strings.TrimSuffix(line, "\r") == delimiter {
			var node yaml.Node
			if err := yaml.Unmarshal([]byte(rest[:offset]), &node); err != nil {
				return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
			}
			body := ""
			if found {
				body = rest[offset+len(line)+1:]
			}
			return &Document{meta: &node, body: body, newline: newline}, nil
		}
		if !found {
			return nil, ErrUnterminated
		}
		offset += len(line) + 1
	}
}

// HasFrontmatter reports whether the document opened with a delimiter.
func (d *Document) HasFrontmatter() bool {
	return d.meta != nil
}

// Body returns the content after the frontmatter.
func (d *Document) Body() string {
	return d.body
}

// Field returns the scalar value of a top-level frontmatter key.
func (d *Document) Field(name string) (string, bool) {
	for _, pair := range d.pairs() {
		if pair[0].Value == name && pair[1].Kind == yaml.ScalarNode {
			return pair[1].Value, true
		}
	}
	return "", false
}

// pairs returns the key/value nodes of the top-level mapping.
func (d *Document) pairs() [][2]*yaml.Node {
	if d.meta == nil || len(d.meta.Content) == 0 {
		return nil
	}
	m := d.meta.Content[0]
	if m.Kind != yaml.MappingNode {
		return nil
	}
	out := make([][2]*yaml.Node, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		out = append(out, [2]*yaml.Node{m.Content[i], m.Content[i+1]})
	}
	return out
}

// NormalizeDates interprets each named field against anchors and
// rewrites it as YYYY-MM-DD when the result reaches minConfidence.
// Values that are already in that form are skipped.
func (d *Document) NormalizeDates(fields []string, anchors chrono.Anchors, minConfidence chrono.Confidence) []Change {
	wanted := make(map[string]bool, len(fields))
	for _, f := range fields {
		wanted[f] = true
	}

	var changes []Change
	for _, pair := range d.pairs() {
		key, value := pair[0], pair[1]
		if !wanted[key.Value] || value.Kind != yaml.ScalarNode || value.Value == "" {
			continue
		}

		raw := strings.TrimSpace(value.Value)
		result := anchors.Interpret(raw)
		change := Change{
			Field:      key.Value,
			From:       value.Value,
			Format:     result.Format,
			Confidence: result.Confidence,
		}
		if result.AtLeast(minConfidence) {
			iso := result.Date.String()
			if iso == value.Value {
				continue
			}
			change.To = iso
			change.Applied = true
			value.Value = iso
			value.Tag = "!!str"
		}
		changes = append(changes, change)
	}
	return changes
}

// Bytes renders the document with its frontmatter re-encoded.
func (d *Document) Bytes() ([]byte, error) {
	if d.meta == nil {
		return []byte(d.body), nil
	}

	var meta bytes.Buffer
	if len(d.meta.Content) > 0 {
		encoder := yaml.NewEncoder(&meta)
		encoder.SetIndent(2)
		if err := encoder.Encode(d.meta); err != nil {
			return nil, fmt.Errorf("failed to encode frontmatter: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode frontmatter: %w", err)
		}
	}

	encoded := meta.Bytes()
	if d.newline == "\r\n" {
		encoded = bytes.ReplaceAll(encoded, []byte("\n"), []byte("\r\n"))
	}

	var buf bytes.Buffer
	buf.WriteString(delimiter + d.newline)
	buf.Write(encoded)
	buf.WriteString(delimiter + d.newline)
	buf.WriteString(d.body)
	return buf.Bytes(), nil
}
