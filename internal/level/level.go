// Package level parses brick layouts and turns them into physics entities.
//
// Text levels hold one brick row per line. Each character is a digit giving
// the number of hits the brick absorbs; 0 leaves a gap. Whitespace inside a
// line is ignored and a blank line is an empty row. YAML levels carry the
// same rows plus an id and a display name.
package level

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyLevel is returned for a level without a single brick.
	ErrEmptyLevel = errors.New("level has no bricks")
	// ErrNoLevels is returned when a directory holds no level files.
	ErrNoLevels = errors.New("no level files found")
)

// Level is a parsed brick layout.
type Level struct {
	ID   string
	Name string
	Rows [][]int // Hits per brick slot, row 0 at the top
	Path string  // Source file, empty for built-ins parsed from memory
}

// BrickCount returns the number of bricks (slots with hits > 0).
func (l *Level) BrickCount() int {
	n := 0
	for _, row := range l.Rows {
		for _, h := range row {
			if h > 0 {
				n++
			}
		}
	}
	return n
}

// MaxScore returns the score earned by clearing the level: a brick with n
// hits pays n + (n-1) + ... + 1.
func (l *Level) MaxScore() int {
	total := 0
	for _, row := range l.Rows {
		for _, h := range row {
			total += h * (h + 1) / 2
		}
	}
	return total
}

// ParseText parses the digit-grid format.
func ParseText(id string, data []byte) (*Level, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	lvl, err := parseRows(id, lines)
	if err != nil {
		return nil, err
	}
	lvl.Name = displayName(id)
	return lvl, nil
}

// yamlLevel is the on-disk YAML structure.
type yamlLevel struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// ParseYAML parses a YAML level. The id falls back to fallbackID when the
// file does not set one.
func ParseYAML(fallbackID string, data []byte) (*Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("level %s: yaml unmarshal: %w", fallbackID, err)
	}

	id := yl.ID
	if id == "" {
		id = fallbackID
	}
	lvl, err := parseRows(id, yl.Rows)
	if err != nil {
		return nil, err
	}
	lvl.Name = yl.Name
	if lvl.Name == "" {
		lvl.Name = displayName(id)
	}
	return lvl, nil
}

func parseRows(id string, lines []string) (*Level, error) {
	// Trailing blank lines carry no rows
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	lvl := &Level{ID: id, Rows: make([][]int, 0, len(lines))}
	for lineNo, line := range lines {
		row := make([]int, 0, len(line))
		col := 0
		for _, r := range line {
			col++
			switch {
			case r == ' ' || r == '\t' || r == '\r':
				continue
			case r >= '0' && r <= '9':
				row = append(row, int(r-'0'))
			default:
				return nil, fmt.Errorf("level %s: line %d column %d: invalid brick %q", id, lineNo+1, col, r)
			}
		}
		lvl.Rows = append(lvl.Rows, row)
	}

	if lvl.BrickCount() == 0 {
		return nil, fmt.Errorf("level %s: %w", id, ErrEmptyLevel)
	}
	return lvl, nil
}

// displayName turns "02_pyramid" into "Pyramid".
func displayName(id string) string {
	name := id
	if i := strings.IndexByte(name, '_'); i >= 0 && i+1 < len(name) {
		name = name[i+1:]
	}
	name = strings.ReplaceAll(name, "_", " ")
	if name == "" {
		return id
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
