// Package fs locates configuration and loads the text files to check.
package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ErrBinary is returned when a file looks like binary data.
var ErrBinary = errors.New("binary file")

// sniffLen is how many leading bytes are inspected for NUL bytes.
const sniffLen = 8000

// DefaultConfigDir returns the default configuration directory for charcheck.
// Uses XDG_CONFIG_HOME if set, otherwise falls back to ~/.config/charcheck.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "charcheck")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "charcheck")
}

// DefaultConfigFile returns the path of the JSON config file.
func DefaultConfigFile() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// Expand resolves paths into a sorted, de-duplicated list of regular files.
// Directories are walked recursively, skipping hidden entries below them.
func Expand(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(p string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if p != root && strings.HasPrefix(d.Name(), ".") {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	slices.Sort(files)
	return files, nil
}

// ReadText reads the file at path as text. It returns ErrBinary when the
// first bytes contain a NUL byte.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if isBinary(data) {
		return "", fmt.Errorf("%s: %w", path, ErrBinary)
	}
	return string(data), nil
}

// ReadAll reads r as text.
func ReadAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func isBinary(data []byte) bool {
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}
	return bytes.IndexByte(data, 0) >= 0
}
