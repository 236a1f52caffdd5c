package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// PaletteStore holds named colour palettes. It is filled once and then
// only read.
type PaletteStore struct {
	palettes map[string]models.Palette
	order    []string
}

// NewPaletteStore creates a store from palettes. Colours are normalised to
// #rrggbb; unparseable colours are dropped. Later duplicates are ignored.
func NewPaletteStore(logger *zap.Logger, palettes ...models.Palette) *PaletteStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &PaletteStore{palettes: make(map[string]models.Palette, len(palettes))}
	for _, p := range palettes {
		if _, exists := s.palettes[p.Name]; exists {
			logger.Warn("Duplicate palette ignored", zap.String("palette", p.Name))
			continue
		}
		colors := make([]string, 0, len(p.Colors))
		for _, c := range p.Colors {
			hex, err := NormalizeColor(c)
			if err != nil {
				logger.Warn("Dropping invalid palette colour",
					zap.String("palette", p.Name),
					zap.String("color", c),
					zap.Error(err))
				continue
			}
			colors = append(colors, hex)
		}
		s.palettes[p.Name] = models.Palette{Name: p.Name, Colors: colors}
		s.order = append(s.order, p.Name)
	}
	return s
}

// LoadPalettes reads a YAML or JSON file mapping palette names to colour
// lists. Palettes are stored in name order.
func LoadPalettes(path string, logger *zap.Logger) (*PaletteStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette file: %w", err)
	}

	var raw map[string][]string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &raw)
	default:
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("parse palette file %s: %w", path, err)
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	palettes := make([]models.Palette, 0, len(names))
	for _, name := range names {
		palettes = append(palettes, models.Palette{Name: name, Colors: raw[name]})
	}
	return NewPaletteStore(logger, palettes...), nil
}

// Palette returns a copy of the colours of the named palette.
func (s *PaletteStore) Palette(name string) ([]string, bool) {
	if s == nil {
		return nil, false
	}
	p, ok := s.palettes[name]
	if !ok {
		return nil, false
	}
	return p.Values(), true
}

// Palettes lists the stored palettes in insertion order.
func (s *PaletteStore) Palettes() []models.Palette {
	if s == nil {
		return nil
	}
	out := make([]models.Palette, 0, len(s.order))
	for _, name := range s.order {
		p := s.palettes[name]
		out = append(out, models.Palette{Name: p.Name, Colors: p.Values()})
	}
	return out
}

// NormalizeColor parses a hex colour (#rgb or #rrggbb, case-insensitive)
// and returns it as lower-case #rrggbb.
func NormalizeColor(s string) (string, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}
