package pack

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/five82/daywall/internal/anchor"
	"github.com/five82/daywall/internal/timeline"
)

// ErrPackNotFound is returned when the pack directory or its pack file is missing.
var ErrPackNotFound = errors.New("pack not found")

// File names probed in a pack directory, in order of preference.
var fileNames = []string{"pack.toml", "pack.yaml", "pack.yml"}

// Pack is a loaded wallpaper pack with absolute image paths.
type Pack struct {
	Name   string
	Author string
	Dir    string
	File   string
	images timeline.Images
}

// Images returns the per-segment image lists.
func (p Pack) Images() timeline.Images {
	var out timeline.Images
	for i, list := range p.images {
		out[i] = append([]string(nil), list...)
	}
	return out
}

// Count returns the number of images across all segments.
func (p Pack) Count() int {
	return p.images.Len()
}

// manifest is the on-disk layout. Each list is keyed by the anchor that opens
// its segment.
type manifest struct {
	Name     string   `toml:"name" yaml:"name"`
	Author   string   `toml:"author" yaml:"author"`
	Midnight []string `toml:"midnight" yaml:"midnight" validate:"dive,required"`
	Moonset  []string `toml:"moonset" yaml:"moonset" validate:"dive,required"`
	Sunrise  []string `toml:"sunrise" yaml:"sunrise" validate:"dive,required"`
	Noon     []string `toml:"noon" yaml:"noon" validate:"dive,required"`
	Sunset   []string `toml:"sunset" yaml:"sunset" validate:"dive,required"`
	Moonrise []string `toml:"moonrise" yaml:"moonrise" validate:"dive,required"`
}

// byKey returns the image lists keyed by the anchor that opens each segment.
func (m manifest) byKey() map[string][]string {
	return map[string][]string{
		"midnight": m.Midnight,
		"moonset":  m.Moonset,
		"sunrise":  m.Sunrise,
		"noon":     m.Noon,
		"sunset":   m.Sunset,
		"moonrise": m.Moonrise,
	}
}

func (m manifest) lists() (timeline.Images, error) {
	var im timeline.Images
	for key, list := range m.byKey() {
		seg, ok := anchor.SegmentForKey(key)
		if !ok {
			return im, fmt.Errorf("no segment opens at %q", key)
		}
		im[seg] = list
	}
	return im, nil
}

// Load reads the pack called name from packsDir.
func Load(fs afero.Fs, packsDir, name string) (Pack, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Pack{}, fmt.Errorf("pack name is empty")
	}
	if name != filepath.Base(name) || name == "." || name == ".." {
		return Pack{}, fmt.Errorf("invalid pack name %q", name)
	}

	dir := filepath.Join(packsDir, name)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	file, err := findFile(fs, dir)
	if err != nil {
		return Pack{}, fmt.Errorf("pack %q: %w", name, err)
	}

	data, err := afero.ReadFile(fs, file)
	if err != nil {
		return Pack{}, fmt.Errorf("read pack %q: %w", name, err)
	}

	var m manifest
	if err := decode(file, data, &m); err != nil {
		return Pack{}, fmt.Errorf("parse pack %q: %w", name, err)
	}
	if err := validator.New().Struct(m); err != nil {
		return Pack{}, fmt.Errorf("validate pack %q: %w", name, err)
	}

	lists, err := m.lists()
	if err != nil {
		return Pack{}, fmt.Errorf("pack %q: %w", name, err)
	}

	p := Pack{Name: m.Name, Author: m.Author, Dir: dir, File: file}
	if p.Name == "" {
		p.Name = name
	}
	for seg, list := range lists {
		resolved := make([]string, 0, len(list))
		for _, img := range list {
			img = strings.TrimSpace(img)
			if !filepath.IsAbs(img) {
				img = filepath.Join(dir, img)
			}
			resolved = append(resolved, img)
		}
		p.images[seg] = resolved
	}
	return p, nil
}

// List returns the names of the packs found in packsDir, sorted.
func List(fs afero.Fs, packsDir string) ([]string, error) {
	entries, err := afero.ReadDir(fs, packsDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read packs dir: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := findFile(fs, filepath.Join(packsDir, entry.Name())); err == nil {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func findFile(fs afero.Fs, dir string) (string, error) {
	if ok, _ := afero.DirExists(fs, dir); !ok {
		return "", fmt.Errorf("%w: no directory %s", ErrPackNotFound, dir)
	}
	for _, name := range fileNames {
		candidate := filepath.Join(dir, name)
		if ok, _ := afero.Exists(fs, candidate); ok {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: no %s in %s", ErrPackNotFound, strings.Join(fileNames, "/"), dir)
}

func decode(file string, data []byte, m *manifest) error {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, m)
	default:
		return toml.Unmarshal(data, m)
	}
}
