package level

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
)

//go:embed builtin
var builtinFS embed.FS

var (
	builtinOnce   sync.Once
	builtinLevels []*Level
	builtinErr    error
)

// Builtin returns the levels shipped with the game, ordered by ID.
func Builtin() ([]*Level, error) {
	builtinOnce.Do(func() {
		builtinLevels, builtinErr = LoadFS(builtinFS, "builtin")
	})
	return builtinLevels, builtinErr
}

// LoadDir loads every level file under dir, ordered by ID.
func LoadDir(dir string) ([]*Level, error) {
	levels, err := LoadFS(os.DirFS(dir), ".")
	if err != nil {
		return nil, err
	}
	for _, l := range levels {
		l.Path = path.Join(dir, l.Path)
	}
	return levels, nil
}

// LoadFS walks root in fsys and parses every .txt, .yaml and .yml file.
// The file name without extension is the default level ID. A campaign
// without a single level is an error.
func LoadFS(fsys fs.FS, root string) ([]*Level, error) {
	var levels []*Level

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read level %s: %w", p, err)
		}

		lvl, err := Parse(strings.TrimSuffix(path.Base(p), path.Ext(p)), ext, data)
		if err != nil {
			return err
		}
		lvl.Path = p
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// Parse dispatches on the file extension (".txt", ".yaml" or ".yml").
func Parse(id, ext string, data []byte) (*Level, error) {
	switch strings.ToLower(ext) {
	case ".txt":
		return ParseText(id, data)
	case ".yaml", ".yml":
		return ParseYAML(id, data)
	default:
		return nil, fmt.Errorf("level %s: unsupported format %q", id, ext)
	}
}

func isSupportedExtension(ext string) bool {
	switch ext {
	case ".txt", ".yaml", ".yml":
		return true
	}
	return false
}
