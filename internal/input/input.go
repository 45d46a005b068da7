// Package input locates and reads puzzle inputs.
//
// Inputs live under a files directory, one subdirectory per puzzle module:
//
//	<files>/<module>/input
package input

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/rs/zerolog"
)

// FileName is the name of the input file inside a module directory.
const FileName = "input"

// ErrInputUnavailable is wrapped by every error returned when an input cannot be read.
var ErrInputUnavailable = errors.New("input unavailable")

// Entry describes an input file found on disk.
type Entry struct {
	// Name is the puzzle module name.
	Name string `json:"name"`
	// Path is the path to the input file.
	Path string `json:"path"`
	// Size is the size in bytes.
	Size int64 `json:"size"`
}

// Path returns the input path of module name.
func Path(files, name string) string {
	return filepath.Join(files, name, FileName)
}

// Read reads the whole input of module name.
func Read(files, name string) (string, error) {
	path := Path(files, name)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: reading %q: %w", ErrInputUnavailable, path, err)
	}

	return string(data), nil
}

// calculateDepth returns the depth of a path relative to the root.
func calculateDepth(path, root string) int {
	relPath := strings.TrimPrefix(path, root)

	relPath = strings.TrimPrefix(relPath, string(filepath.Separator))
	if relPath == "" {
		return 0
	}

	return strings.Count(relPath, string(filepath.Separator)) + 1
}

// Discover walks files and returns every <module>/input it contains, sorted by name.
// A missing files directory yields no entries.
func Discover(ctx context.Context, files string) ([]Entry, error) {
	log := zerolog.Ctx(ctx)

	files = filepath.Clean(files)

	if info, err := os.Stat(files); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("accessing files directory %q: %w", files, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("files path %q is not a directory", files)
	}

	var (
		mu      sync.Mutex // fastwalk calls back from multiple goroutines
		entries []Entry
	)

	conf := &fastwalk.Config{
		Follow: false,
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, files, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("error accessing path")

			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		depth := calculateDepth(path, files)

		if d.IsDir() {
			if depth > 1 {
				return filepath.SkipDir
			}

			return nil
		}

		if depth != 2 || d.Name() != FileName || !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("skipping unreadable input")

			return nil
		}

		mu.Lock()
		defer mu.Unlock()

		entries = append(entries, Entry{
			Name: filepath.Base(filepath.Dir(path)),
			Path: path,
			Size: info.Size(),
		})

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}
