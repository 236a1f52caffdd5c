package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
	"go.uber.org/zap"
)

const (
	// DefaultSettingsName is the settings file name searched for, without
	// extension.
	DefaultSettingsName = "plotstruct"
	// EnvPrefix prefixes environment overrides, e.g. PLOTSTRUCT_FIGURE_DIRECTORY.
	EnvPrefix = "PLOTSTRUCT"
)

// Settings holds deployment configuration read once at startup.
type Settings struct {
	// TableOptions overrides the default table editor options.
	TableOptions map[string]interface{} `mapstructure:"table_options"`
	// LayoutOptions replaces the default layout when set.
	LayoutOptions map[string]interface{} `mapstructure:"layout_options"`
	// ConfigOptions replaces the default display config when set.
	ConfigOptions map[string]interface{} `mapstructure:"config_options"`
	// TraceOptions replaces the default trace attributes when set.
	TraceOptions map[string]interface{} `mapstructure:"trace_options"`
	// IncludePlotlyJS selects how the charting library is included
	// (cdn, directory, true, false).
	IncludePlotlyJS string `mapstructure:"include_plotlyjs"`
	// FigureDirectory is the preset directory name under each search path.
	FigureDirectory string `mapstructure:"figure_directory"`
	// SearchPaths are the roots scanned for FigureDirectory.
	SearchPaths []string `mapstructure:"search_paths"`
	// PaletteFile is an optional YAML or JSON palette file.
	PaletteFile string `mapstructure:"palette_file"`
	// Logging configures the CLI logger.
	Logging LoggingSettings `mapstructure:"logging"`
}

// LoggingSettings configures logging.
type LoggingSettings struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("include_plotlyjs", "cdn")
	v.SetDefault("figure_directory", "plotly")
	v.SetDefault("search_paths", []string{"."})
	v.SetDefault("palette_file", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")
}

// LoadSettings reads settings from cfgFile, or from plotstruct.yaml in the
// working directory, $HOME/.plotstruct or /etc/plotstruct when cfgFile is
// empty. A missing settings file is not an error. Viper folds keys to
// lower case, so option maps should use lower-case attribute names.
func LoadSettings(cfgFile string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.plotstruct")
		v.AddConfigPath("/etc/plotstruct/")
		v.SetConfigName(DefaultSettingsName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading settings file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return &s, nil
}

// DefaultBundle returns the built-in defaults with every member set in
// the settings replacing its default.
func (s *Settings) DefaultBundle() models.OptionBundle {
	bundle := DefaultBundle()
	if s == nil {
		return bundle
	}
	if s.LayoutOptions != nil {
		bundle.Layout = models.Attrs(s.LayoutOptions).Clone()
	}
	if s.ConfigOptions != nil {
		bundle.Config = models.Attrs(s.ConfigOptions).Clone()
	}
	if s.TraceOptions != nil {
		bundle.Trace = models.Attrs(s.TraceOptions).Clone()
	}
	return bundle
}

// PresetDirs returns FigureDirectory joined to every search path.
func (s *Settings) PresetDirs() []string {
	if s == nil || s.FigureDirectory == "" {
		return nil
	}
	dirs := make([]string, 0, len(s.SearchPaths))
	for _, root := range s.SearchPaths {
		dirs = append(dirs, filepath.Join(root, s.FigureDirectory))
	}
	return dirs
}

// NewResolver loads presets and palettes named by the settings and
// returns a resolver over the configured defaults.
func (s *Settings) NewResolver(logger *zap.Logger) (*Resolver, error) {
	presets, err := LoadPresets(logger, s.PresetDirs()...)
	if err != nil {
		return nil, err
	}

	var palettes *PaletteStore
	if s != nil && s.PaletteFile != "" {
		palettes, err = LoadPalettes(s.PaletteFile, logger)
		if err != nil {
			return nil, err
		}
	} else {
		palettes = NewPaletteStore(logger)
	}
	return NewResolver(s.DefaultBundle(), presets, palettes, logger), nil
}
