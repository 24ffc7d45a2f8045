package frontmatter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mph-llm-experiments/acore"

	"github.com/mph-llm-experiments/adate/internal/chrono"
)

// Scan lists the markdown files under dir. When entityType is set only
// acore files of that type ({id}--{slug}__{type}.md) are returned.
func Scan(dir, entityType string) ([]string, error) {
	if entityType != "" {
		sc := &acore.Scanner{Dir: dir}
		paths, err := sc.FindByType(entityType)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
		}
		sort.Strings(paths)
		return paths, nil
	}

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// Options configures NormalizeFile.
type Options struct {
	Fields        []string
	Anchors       chrono.Anchors
	MinConfidence chrono.Confidence
	DryRun        bool
}

// NormalizeFile normalizes the date fields of one file and, unless
// DryRun is set, writes it back when anything changed.
func NormalizeFile(path string, opts Options) ([]Change, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := Split(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if !doc.HasFrontmatter() {
		return nil, nil
	}

	changes := doc.NormalizeDates(opts.Fields, opts.Anchors, opts.MinConfidence)
	if opts.DryRun || !anyApplied(changes) {
		return changes, nil
	}

	out, err := doc.Bytes()
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return changes, nil
}

func anyApplied(changes []Change) bool {
	for _, c := range changes {
		if c.Applied {
			return true
		}
	}
	return false
}
