// Package main provides the CLI entry point for plotstruct-go.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct"
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/config"
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	cfgFile  string
	logLevel string

	outputPath string
	pretty     bool
	embed      bool
	xlsxPath   string
	sheetName  string
	cellRange  string
	kindName   string
	title      string
	preset     string
	custom     string

	settings *config.Settings
	logger   *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "plotstruct",
		Short: "Compose chart figures from tables and spreadsheets",
		Long: `plotstruct-go turns chart blocks (a kind, a data table and a few
styling fields) or a sheet of an Excel file into figure JSON.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Settings file (default: ./plotstruct.yaml, $HOME/.plotstruct, /etc/plotstruct)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides settings)")

	rootCmd.AddCommand(newRenderCmd(), newPresetsCmd(), newPalettesCmd(), newTableOptionsCmd())
	return rootCmd
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [block.json|block.yaml]",
		Short: "Render a chart block or a sheet to figure JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&embed, "embed", false, "Wrap the figure in a renderer payload")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Read chart data from an Excel file")
	cmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet to read (default: first sheet)")
	cmd.Flags().StringVar(&cellRange, "range", "", "Cell range to read, e.g. B2:F20")
	cmd.Flags().StringVar(&kindName, "kind", "", "Chart kind: "+kindList())
	cmd.Flags().StringVar(&title, "title", "", "Chart title")
	cmd.Flags().StringVar(&preset, "preset", "", "Layout preset name")
	cmd.Flags().StringVar(&custom, "custom", "", `Custom JSON patch, e.g. {"layout": {"height": 400}}`)
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List layout presets found in the preset directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.LoadPresets(logger, settings.PresetDirs()...)
			if err != nil {
				return fmt.Errorf("failed to load presets: %w", err)
			}
			for _, name := range store.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newPalettesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palettes",
		Short: "Print the configured colour palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if settings.PaletteFile == "" {
				return fmt.Errorf("no palette_file configured")
			}
			store, err := config.LoadPalettes(settings.PaletteFile, logger)
			if err != nil {
				return fmt.Errorf("failed to load palettes: %w", err)
			}
			return writeJSON(cmd, store.Palettes())
		},
	}
}

func newTableOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table-options KIND",
		Short: "Print the table editor options of a chart kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := models.ParseKind(args[0])
			if !ok {
				return fmt.Errorf("invalid kind: %s (must be one of %s)", args[0], kindList())
			}
			return writeJSON(cmd, config.TableOptions(kind, settings.TableOptions))
		},
	}
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	settings, err = config.LoadSettings(cfgFile)
	if err != nil {
		return err
	}
	level := settings.Logging.Level
	if logLevel != "" {
		level = logLevel
	}
	logger, err = buildLogger(settings.Logging.File, level)
	return err
}

func runRender(cmd *cobra.Command, args []string) error {
	block := models.Block{}
	if len(args) == 1 {
		b, err := loadBlock(args[0])
		if err != nil {
			return err
		}
		block = *b
	} else if xlsxPath == "" {
		return fmt.Errorf("either a block file or --xlsx is required")
	}
	if err := applyFlags(&block); err != nil {
		return err
	}

	resolver, err := settings.NewResolver(logger)
	if err != nil {
		return fmt.Errorf("failed to load options: %w", err)
	}
	opts := plotstruct.DefaultOptions()
	opts.Resolver = resolver
	opts.Logger = logger

	var fig *models.Figure
	if xlsxPath != "" {
		fig, err = plotstruct.RenderWorkbook(xlsxPath, plotstruct.WorkbookRequest{
			Sheet: sheetName,
			Range: cellRange,
			Block: block,
		}, opts)
	} else {
		fig, err = plotstruct.Render(&block, opts)
	}
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	var data []byte
	if embed {
		data, err = output.EmbedToJSON(output.NewEmbed(fig, settings.IncludePlotlyJS), pretty)
	} else {
		data, err = output.FigureToJSON(fig, pretty)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// applyFlags lets command line flags override the block read from file.
func applyFlags(block *models.Block) error {
	if kindName != "" {
		kind, ok := models.ParseKind(kindName)
		if !ok {
			return fmt.Errorf("invalid kind: %s (must be one of %s)", kindName, kindList())
		}
		block.Kind = kind
	}
	if title != "" {
		if block.Fields == nil {
			block.Fields = map[string]interface{}{}
		}
		block.Fields["title"] = title
	}
	if preset != "" {
		block.Preset = preset
	}
	if custom != "" {
		block.Custom = custom
	}
	return nil
}

// loadBlock reads a block from a JSON or YAML file.
func loadBlock(path string) (*models.Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read block file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var raw map[string]interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse block file %s: %w", path, err)
		}
		if data, err = json.Marshal(raw); err != nil {
			return nil, fmt.Errorf("failed to parse block file %s: %w", path, err)
		}
	}

	var block models.Block
	if err := json.Unmarshal(data, &block); err != nil {
		return nil, fmt.Errorf("failed to parse block file %s: %w", path, err)
	}
	return &block, nil
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	data, err := output.ToJSON(v, true)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func kindList() string {
	names := make([]string, len(models.AllKinds))
	for i, k := range models.AllKinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// buildLogger returns a JSON logger writing to logFile, or to stderr when
// logFile is empty. Stdout carries the figure output.
func buildLogger(logFile, level string) (*zap.Logger, error) {
	var out zapcore.WriteSyncer
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", logFile, err)
		}
		out = zapcore.AddSync(f)
	} else {
		out = zapcore.AddSync(os.Stderr)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		out,
		parseLogLevel(level),
	)
	return zap.New(core), nil
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
