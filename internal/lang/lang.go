// Package lang holds the localized HUD and banner strings.
//
// A language table is a text file with one message per line, in the fixed
// key order score, lives, you_win, you_lose, next_level, level.
package lang

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Message keys in file order.
const (
	KeyScore     = "score"
	KeyLives     = "lives"
	KeyYouWin    = "you_win"
	KeyYouLose   = "you_lose"
	KeyNextLevel = "next_level"
	KeyLevel     = "level"
)

// Keys lists the message keys in the order they appear in a table file.
var Keys = []string{KeyScore, KeyLives, KeyYouWin, KeyYouLose, KeyNextLevel, KeyLevel}

// Default is the language used when none is chosen.
const Default = "english"

// displayNames holds menu labels that differ from the table name.
var displayNames = map[string]string{
	"french": "français",
}

// DisplayName returns the menu label of a language.
func DisplayName(name string) string {
	if d, ok := displayNames[name]; ok {
		return d
	}
	return name
}

// ErrUnknownLanguage is returned by Load for names without a table.
var ErrUnknownLanguage = errors.New("unknown language")

//go:embed tables/*.txt
var tablesFS embed.FS

// Table maps message keys to text in one language.
type Table struct {
	Name     string
	messages map[string]string
}

// Parse reads a table. Missing trailing lines fall back to the key itself,
// extra lines are ignored.
func Parse(name string, data []byte) *Table {
	t := &Table{Name: name, messages: make(map[string]string, len(Keys))}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for i, key := range Keys {
		if i < len(lines) && strings.TrimSpace(lines[i]) != "" {
			t.messages[key] = strings.TrimSpace(lines[i])
		}
	}
	return t
}

// Text returns the message for key, or the key when it is missing.
func (t *Table) Text(key string) string {
	if t == nil {
		return key
	}
	if s, ok := t.messages[key]; ok {
		return s
	}
	return key
}

// Names returns the embedded language names, sorted.
func Names() []string {
	entries, err := tablesFS.ReadDir("tables")
	if err != nil {
		return []string{Default}
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}

// Load returns the embedded table for name.
func Load(name string) (*Table, error) {
	data, err := tablesFS.ReadFile("tables/" + name + ".txt")
	if err != nil {
		return nil, fmt.Errorf("lang: %q: %w", name, ErrUnknownLanguage)
	}
	return Parse(name, data), nil
}

// MustLoad is Load for names known to exist; it falls back to Default.
func MustLoad(name string) *Table {
	if t, err := Load(name); err == nil {
		return t
	}
	t, err := Load(Default)
	if err != nil {
		panic(fmt.Sprintf("lang: default table missing: %v", err))
	}
	return t
}
