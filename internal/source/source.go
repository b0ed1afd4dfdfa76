package source

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ErrNoFiles is returned when a directory holds no candidate file.
var ErrNoFiles = errors.New("file not found")

// Load reads the whole file at path.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to load file: %w", err)
	}
	return string(data), nil
}

// ListFiles walks dir and returns regular files that have an extension,
// skipping hidden files and directories. A non-empty ext keeps only files
// with that extension, compared case-insensitively and without the dot.
func ListFiles(dir, ext string) ([]string, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			// Unreadable entries are skipped.
			return nil
		}
		if path != dir && isHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		fileExt := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		if fileExt == "" {
			return nil
		}
		if ext != "" && fileExt != ext {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// Picker chooses a random candidate file.
type Picker struct {
	rnd *rand.Rand
}

// NewPicker returns a Picker seeded with the current time.
func NewPicker() *Picker {
	return NewPickerWithSeed(time.Now().UnixNano())
}

// NewPickerWithSeed returns a deterministic Picker.
func NewPickerWithSeed(seed int64) *Picker {
	return &Picker{rnd: rand.New(rand.NewSource(seed))}
}

// Pick returns a random file from ListFiles(dir, ext).
func (p *Picker) Pick(dir, ext string) (string, error) {
	files, err := ListFiles(dir, ext)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", ErrNoFiles
	}
	return files[p.rnd.Intn(len(files))], nil
}
