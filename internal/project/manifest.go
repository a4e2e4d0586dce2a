// Package project locates and reads the ember.toml manifest. The manifest
// carries the package name and preset variable bindings for evaluation.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file looked up in each directory on the way up.
const ManifestName = "ember.toml"

// Manifest is a parsed ember.toml.
type Manifest struct {
	Package PackageSection `toml:"package"`
	Eval    EvalSection    `toml:"eval"`

	// Path is where the manifest was found. Not part of the TOML.
	Path string `toml:"-"`
}

type PackageSection struct {
	Name string `toml:"name"`
}

type EvalSection struct {
	// Vars are variable bindings fed into the evaluator, below any
	// bindings given on the command line.
	Vars map[string]float64 `toml:"vars"`
}

// ErrPackageNameMissing indicates that [package].name is absent or blank.
var ErrPackageNameMissing = errors.New("missing [package].name")

// FindManifest walks up from startDir to locate ember.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses the manifest at path.
func Load(path string) (Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(m.Package.Name) == "" {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	m.Path = path
	return m, nil
}

// LoadFromDir discovers and parses the manifest governing startDir. The
// second result is false when no manifest exists, which is not an error.
func LoadFromDir(startDir string) (Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return Manifest{}, false, err
	}
	m, err := Load(path)
	if err != nil {
		return Manifest{}, false, err
	}
	return m, true, nil
}
