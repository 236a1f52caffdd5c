// Package plotstruct composes chart figures from editor blocks and from
// spreadsheet input.
package plotstruct

import (
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/config"
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/parser"
	"go.uber.org/zap"
)

// Options configures rendering.
type Options struct {
	// Resolver merges option layers. Nil uses the built-in defaults only.
	Resolver *config.Resolver
	// Logger receives degraded-path diagnostics. Nil disables logging.
	Logger *zap.Logger
	// TableParams tunes table detection for workbook input.
	TableParams parser.TableDetectionParams
	// UsePrintAreas selects the first print area of a sheet as the data
	// region. If nil, defaults to true.
	UsePrintAreas *bool
	// UseChartHints seeds kind and titles from the sheet's first chart.
	// If nil, defaults to true.
	UseChartHints *bool
}

// DefaultOptions returns options over the built-in defaults with empty
// preset and palette stores.
func DefaultOptions() Options {
	return Options{
		Resolver:    config.NewResolver(config.DefaultBundle(), config.NewPresetStore(), config.NewPaletteStore(nil), nil),
		Logger:      zap.NewNop(),
		TableParams: parser.DefaultTableParams(),
	}
}

// ShouldUsePrintAreas returns whether print areas choose the data region.
func (o Options) ShouldUsePrintAreas() bool {
	if o.UsePrintAreas != nil {
		return *o.UsePrintAreas
	}
	return true
}

// ShouldUseChartHints returns whether chart drawings seed block fields.
func (o Options) ShouldUseChartHints() bool {
	if o.UseChartHints != nil {
		return *o.UseChartHints
	}
	return true
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) resolver() *config.Resolver {
	if o.Resolver == nil {
		return config.NewResolver(config.DefaultBundle(), nil, nil, o.Logger)
	}
	return o.Resolver
}

func (o Options) tableParams() parser.TableDetectionParams {
	if o.TableParams == (parser.TableDetectionParams{}) {
		return parser.DefaultTableParams()
	}
	return o.TableParams
}
