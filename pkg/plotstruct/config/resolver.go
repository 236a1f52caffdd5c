package config

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PresetLookup finds a named option bundle.
type PresetLookup interface {
	Preset(name string) (models.OptionBundle, bool)
}

// PaletteLookup finds a named colour list.
type PaletteLookup interface {
	Palette(name string) ([]string, bool)
}

// Resolver merges the option layers of a chart. It keeps no per-call
// state and is safe for concurrent use once built.
type Resolver struct {
	defaults models.OptionBundle
	presets  PresetLookup
	palettes PaletteLookup
	logger   *zap.Logger
}

// NewResolver creates a resolver. presets and palettes may be nil.
func NewResolver(defaults models.OptionBundle, presets PresetLookup, palettes PaletteLookup, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		defaults: defaults.Clone(),
		presets:  presets,
		palettes: palettes,
		logger:   logger,
	}
}

// Defaults returns a copy of the bottom layer.
func (r *Resolver) Defaults() models.OptionBundle {
	return r.defaults.Clone()
}

// Resolve returns the option bundle for a block. Layers apply in order:
// defaults, the preset named preset, overrides and finally the custom
// JSON patch. Unknown presets and malformed patches are skipped.
func (r *Resolver) Resolve(preset string, overrides models.OptionBundle, custom string) models.OptionBundle {
	bundle := r.defaults.Clone()

	if preset != "" && r.presets != nil {
		if p, ok := r.presets.Preset(preset); ok {
			bundle = bundle.Overlay(p)
		} else {
			r.logger.Debug("Unknown preset, using defaults", zap.String("preset", preset))
		}
	}

	bundle = bundle.Overlay(overrides)

	patch := r.parseCustom(custom)
	if patch.Layout != nil {
		bundle.Layout = models.DeepMerge(bundle.Layout, patch.Layout)
	}
	if patch.Trace != nil {
		bundle.Trace = models.DeepMerge(bundle.Trace, patch.Trace)
	}

	bundle.Layout = r.resolveColorway(bundle.Layout)
	return bundle
}

// parseCustom decodes a custom patch. Invalid JSON and members that are
// not objects count as absent.
func (r *Resolver) parseCustom(custom string) models.OptionBundle {
	var patch models.OptionBundle
	if strings.TrimSpace(custom) == "" {
		return patch
	}

	var raw map[string]interface{}
	if err := json.UnmarshalFromString(custom, &raw); err != nil {
		r.logger.Warn("Ignoring malformed custom options", zap.Error(err))
		return patch
	}
	if v, ok := raw["layout"]; ok {
		if m, ok := models.AsAttrs(v); ok {
			patch.Layout = m
		} else {
			r.logger.Warn("Ignoring custom layout that is not an object")
		}
	}
	if v, ok := raw["trace"]; ok {
		if m, ok := models.AsAttrs(v); ok {
			patch.Trace = m
		} else {
			r.logger.Warn("Ignoring custom trace that is not an object")
		}
	}
	return patch
}

// resolveColorway replaces a palette name in layout with its colours.
func (r *Resolver) resolveColorway(layout models.Attrs) models.Attrs {
	name, ok := layout["colorway"].(string)
	if !ok {
		return layout
	}
	var colors []string
	found := false
	if r.palettes != nil {
		colors, found = r.palettes.Palette(name)
	}

	out := models.Merge(layout, nil)
	if !found {
		r.logger.Warn("Unknown palette, dropping colorway", zap.String("palette", name))
		delete(out, "colorway")
		return out
	}
	out["colorway"] = colors
	return out
}
