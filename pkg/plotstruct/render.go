package plotstruct

import (
	"fmt"
	"os"

	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/figure"
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/parser"
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/traces"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Render builds the figure of a block. The only error is an unknown kind;
// short tables, unknown presets and malformed custom options all render a
// smaller figure instead.
func Render(block *models.Block, opts Options) (*models.Figure, error) {
	if block == nil {
		block = &models.Block{}
	}
	builder, ok := traces.Lookup(block.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, block.Kind)
	}
	logger := opts.logger().With(zap.String("kind", string(block.Kind)))

	b := *block
	b.Fields = traces.Normalize(builder, block.Fields, logger)

	res := builder.Build(&b)
	if len(res.Traces) == 0 {
		logger.Debug("Not enough data for any trace")
	}

	bundle := opts.resolver().Resolve(b.Preset, traces.Overrides(builder, b.Fields), b.Custom)
	return figure.Assemble(res, bundle, b.Fields), nil
}

// WorkbookRequest selects the spreadsheet input of a render.
type WorkbookRequest struct {
	// Sheet is the sheet to read. Empty selects the first sheet.
	Sheet string
	// Range is an explicit A1 range such as "B2:F20".
	Range string
	// Block carries kind, fields, preset and custom options. Its grid is
	// replaced by the sheet data.
	Block models.Block
}

// RenderWorkbook reads a sheet of an .xlsx file and renders it. Kind and
// titles left empty in the request are taken from the sheet's first chart.
func RenderWorkbook(path string, req WorkbookRequest, opts Options) (*models.Figure, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	logger := opts.logger()

	sheet := req.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
		}
		sheet = sheets[0]
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}

	grid, err := parser.ReadGrid(f, sheet)
	if err != nil {
		return nil, NewRenderError(sheet, "cells", err)
	}

	var printAreas []models.Area
	if opts.ShouldUsePrintAreas() {
		printAreas = parser.ExtractPrintAreas(f)[sheet]
	}
	area, source, err := parser.SelectRegion(grid, req.Range, printAreas, opts.tableParams())
	if err != nil {
		return nil, NewRenderError(sheet, "range", err)
	}
	logger.Debug("Selected sheet region",
		zap.String("sheet", sheet),
		zap.String("range", parser.FormatRange(area)),
		zap.String("source", string(source)))

	block := req.Block
	block.Fields = copyFields(req.Block.Fields)
	block.Grid = parser.Crop(grid, area)

	var hint *models.ChartHint
	if opts.ShouldUseChartHints() {
		charts, err := parser.ExtractCharts(path)
		if err != nil {
			logger.Warn("Failed to read chart drawings", zap.String("sheet", sheet), zap.Error(err))
		} else if hints := charts[sheet]; len(hints) > 0 {
			hint = &hints[0]
			seedFromHint(&block, *hint)
		}
	}

	if block.Kind == models.KindBubble && len(block.Tables) == 0 {
		block.Tables = []models.BubbleTable{{GroupName: sheet, Grid: block.Grid}}
	}

	fig, err := Render(&block, opts)
	if err != nil {
		return nil, NewRenderError(sheet, "traces", err)
	}

	if hint != nil && hint.W > 0 && hint.H > 0 {
		if _, ok := fig.Layout["width"]; !ok {
			fig.Layout["width"] = hint.W
			fig.Layout["height"] = hint.H
		}
	}
	return fig, nil
}

// seedFromHint fills kind, titles and bar orientation the request left
// empty.
func seedFromHint(block *models.Block, hint models.ChartHint) {
	if block.Kind == "" {
		block.Kind = hint.Kind
	}
	seed := map[string]string{
		"title":       hint.Title,
		"xaxis_title": hint.XAxisTitle,
		"yaxis_title": hint.YAxisTitle,
	}
	if block.Kind == models.KindBar && hint.Kind == models.KindBar {
		seed["orientation"] = hint.Orientation
	}
	for name, v := range seed {
		if v == "" || !models.IsBlank(block.Field(name)) {
			continue
		}
		block.Fields[name] = v
	}
}

func copyFields(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}
