package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// presetSchema describes a preset file: an object whose layout, config and
// trace members, when present, are objects.
const presetSchema = `{
  "type": "object",
  "properties": {
    "layout": {"type": "object"},
    "config": {"type": "object"},
    "trace":  {"type": "object"}
  }
}`

var presetSchemaLoader = gojsonschema.NewStringLoader(presetSchema)

// Preset is a named option bundle.
type Preset struct {
	Name   string
	Bundle models.OptionBundle
}

// PresetStore holds presets keyed by case-sensitive name. It is built
// once and then only read, so concurrent lookups need no locking.
type PresetStore struct {
	presets map[string]models.OptionBundle
	order   []string
}

// NewPresetStore creates a store from presets. The first preset with a
// given name wins.
func NewPresetStore(presets ...Preset) *PresetStore {
	s := &PresetStore{presets: make(map[string]models.OptionBundle, len(presets))}
	for _, p := range presets {
		s.add(p.Name, p.Bundle)
	}
	return s
}

func (s *PresetStore) add(name string, bundle models.OptionBundle) bool {
	if _, exists := s.presets[name]; exists {
		return false
	}
	s.presets[name] = bundle
	s.order = append(s.order, name)
	return true
}

// LoadPresets scans dirs, without recursing, for .json, .yaml and .yml
// preset files. Each preset is named after its file. Missing directories
// are skipped; files that fail to parse or validate are skipped with a
// warning.
func LoadPresets(logger *zap.Logger, dirs ...string) (*PresetStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := NewPresetStore()

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				logger.Debug("Preset directory not found", zap.String("dir", dir))
				continue
			}
			return nil, fmt.Errorf("read preset directory %s: %w", dir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() || !isPresetFile(entry.Name()) {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			bundle, err := readPreset(path)
			if err != nil {
				logger.Warn("Skipping preset file", zap.String("path", path), zap.Error(err))
				continue
			}
			if !s.add(entry.Name(), bundle) {
				logger.Warn("Duplicate preset ignored",
					zap.String("preset", entry.Name()),
					zap.String("path", path))
			}
		}
	}

	logger.Debug("Loaded presets", zap.Int("count", len(s.order)))
	return s, nil
}

func isPresetFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func readPreset(path string) (models.OptionBundle, error) {
	var bundle models.OptionBundle

	data, err := os.ReadFile(path)
	if err != nil {
		return bundle, err
	}

	var doc interface{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		err = json.Unmarshal(data, &doc)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return bundle, fmt.Errorf("parse: %w", err)
	}

	result, err := gojsonschema.Validate(presetSchemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return bundle, fmt.Errorf("validate: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, len(result.Errors()))
		for i, e := range result.Errors() {
			msgs[i] = e.String()
		}
		return bundle, fmt.Errorf("invalid preset: %s", strings.Join(msgs, "; "))
	}

	obj, _ := models.AsAttrs(doc)
	bundle.Layout, _ = models.AsAttrs(obj["layout"])
	bundle.Config, _ = models.AsAttrs(obj["config"])
	bundle.Trace, _ = models.AsAttrs(obj["trace"])
	return bundle, nil
}

// Preset returns a copy of the named bundle.
func (s *PresetStore) Preset(name string) (models.OptionBundle, bool) {
	if s == nil {
		return models.OptionBundle{}, false
	}
	b, ok := s.presets[name]
	if !ok {
		return models.OptionBundle{}, false
	}
	return b.Clone(), true
}

// Names lists preset names in load order.
func (s *PresetStore) Names() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}
