package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
)

// chartKinds maps OOXML plot elements to the closest chart kind. Plot
// types without a counterpart map to the empty kind.
var chartKinds = map[string]models.Kind{
	"lineChart":      models.KindLine,
	"line3DChart":    models.KindLine,
	"areaChart":      models.KindLine,
	"area3DChart":    models.KindLine,
	"barChart":       models.KindBar,
	"bar3DChart":     models.KindBar,
	"pieChart":       models.KindPie,
	"pie3DChart":     models.KindPie,
	"doughnutChart":  models.KindPie,
	"ofPieChart":     models.KindPie,
	"scatterChart":   models.KindScatter,
	"bubbleChart":    models.KindBubble,
	"surfaceChart":   models.KindSurface,
	"surface3DChart": models.KindSurface,
	"radarChart":     "",
	"stockChart":     "",
}

// graphicFrame is a chart reference found in a drawing part.
type graphicFrame struct {
	name   string
	relID  string
	width  int
	height int
}

// ExtractCharts reads the chart drawings of an .xlsx file and returns one
// hint per chart, keyed by sheet name. Parts that cannot be read are
// skipped.
func ExtractCharts(xlsxPath string) (map[string][]models.ChartHint, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return extractCharts(&r.Reader), nil
}

func extractCharts(r *zip.Reader) map[string][]models.ChartHint {
	result := make(map[string][]models.ChartHint)

	const workbookPart = "xl/workbook.xml"
	workbookXML, err := readPart(r, workbookPart)
	if err != nil || workbookXML == nil {
		return result
	}
	sheetsByID, _ := parseWorkbookSheets(workbookXML)

	wbRels, err := readPart(r, relsPath(workbookPart))
	if err != nil || wbRels == nil {
		return result
	}

	for _, rel := range parseRels(wbRels) {
		sheetName, ok := sheetsByID[rel.id]
		if !ok || rel.kind != "worksheet" {
			continue
		}
		sheetPart := resolvePart(workbookPart, rel.target)
		if hints := sheetCharts(r, sheetPart); len(hints) > 0 {
			result[sheetName] = hints
		}
	}
	return result
}

// sheetCharts returns the charts of every drawing attached to a sheet.
func sheetCharts(r *zip.Reader, sheetPart string) []models.ChartHint {
	sheetRels, err := readPart(r, relsPath(sheetPart))
	if err != nil || sheetRels == nil {
		return nil
	}

	var hints []models.ChartHint
	for _, rel := range parseRels(sheetRels) {
		if rel.kind != "drawing" {
			continue
		}
		hints = append(hints, drawingCharts(r, resolvePart(sheetPart, rel.target))...)
	}
	return hints
}

// drawingCharts resolves and parses the charts placed on a drawing.
func drawingCharts(r *zip.Reader, drawingPart string) []models.ChartHint {
	drawingXML, err := readPart(r, drawingPart)
	if err != nil || drawingXML == nil {
		return nil
	}
	frames := parseDrawing(drawingXML)
	if len(frames) == 0 {
		return nil
	}

	relsXML, err := readPart(r, relsPath(drawingPart))
	if err != nil || relsXML == nil {
		return nil
	}
	targets := make(map[string]string)
	for _, rel := range parseRels(relsXML) {
		if rel.kind == "chart" {
			targets[rel.id] = resolvePart(drawingPart, rel.target)
		}
	}

	var hints []models.ChartHint
	for _, fr := range frames {
		chartPart, ok := targets[fr.relID]
		if !ok {
			continue
		}
		chartXML, err := readPart(r, chartPart)
		if err != nil || chartXML == nil {
			continue
		}
		hint := parseChart(chartXML)
		hint.Name = fr.name
		hint.W, hint.H = fr.width, fr.height
		hints = append(hints, hint)
	}
	return hints
}

// parseDrawing lists the graphic frames of a drawing that hold a chart.
func parseDrawing(data []byte) []graphicFrame {
	var frames []graphicFrame
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "graphicFrame" {
			continue
		}

		var fr graphicFrame
		eachChild(decoder, func(se xml.StartElement) bool {
			switch se.Name.Local {
			case "cNvPr":
				fr.name = attrValue(se, "name")
			case "xfrm":
				fr.width, fr.height = parseExtent(decoder)
				return true
			case "chart":
				fr.relID = attrValue(se, "id")
			}
			return false
		})
		if fr.relID != "" {
			frames = append(frames, fr)
		}
	}
	return frames
}

// parseChart reads a chart part.
func parseChart(data []byte) models.ChartHint {
	var hint models.ChartHint
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "title":
			hint.Title = parseTitle(decoder)
		case "plotArea":
			parsePlotArea(decoder, &hint)
		}
	}
	return hint
}

// parseTitle consumes a title element and joins its text runs. Titles
// linked to a cell carry their cached value instead.
func parseTitle(decoder *xml.Decoder) string {
	var rich, cached strings.Builder
	eachChild(decoder, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "t":
			rich.WriteString(readElementText(decoder))
			return true
		case "v":
			cached.WriteString(readElementText(decoder))
			return true
		}
		return false
	})
	if rich.Len() > 0 {
		return strings.TrimSpace(rich.String())
	}
	return strings.TrimSpace(cached.String())
}

type valueAxis struct {
	title string
	pos   string
}

// parsePlotArea fills kind, series and axis titles from the first plot of
// a plot area. Further plots of a combination chart are ignored.
func parsePlotArea(decoder *xml.Decoder, hint *models.ChartHint) {
	var valAxes []valueAxis
	hasCatAx := false

	eachChild(decoder, func(se xml.StartElement) bool {
		name := se.Name.Local
		if kind, ok := chartKinds[name]; ok {
			if hint.SourceType != "" {
				return false
			}
			hint.SourceType = name
			hint.Kind = kind
			parsePlot(decoder, hint)
			return true
		}
		switch name {
		case "catAx", "dateAx":
			hasCatAx = true
			title, _ := parseAxis(decoder)
			if hint.XAxisTitle == "" {
				hint.XAxisTitle = title
			}
			return true
		case "valAx":
			title, pos := parseAxis(decoder)
			valAxes = append(valAxes, valueAxis{title: title, pos: pos})
			return true
		}
		return false
	})

	// Scatter and bubble charts have two value axes; the horizontal one is x.
	for _, ax := range valAxes {
		if !hasCatAx && (ax.pos == "b" || ax.pos == "t") {
			if hint.XAxisTitle == "" {
				hint.XAxisTitle = ax.title
			}
			continue
		}
		if hint.YAxisTitle == "" {
			hint.YAxisTitle = ax.title
		}
	}
}

// parsePlot consumes a plot element such as barChart.
func parsePlot(decoder *xml.Decoder, hint *models.ChartHint) {
	eachChild(decoder, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "barDir":
			if attrValue(se, "val") == "bar" {
				hint.Orientation = "h"
			} else {
				hint.Orientation = "v"
			}
		case "ser":
			hint.Series = append(hint.Series, parseSeries(decoder))
			return true
		}
		return false
	})
}

// parseSeries consumes a ser element.
func parseSeries(decoder *xml.Decoder) models.ChartSeries {
	var s models.ChartSeries
	eachChild(decoder, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "tx":
			name, ref := parseSeriesName(decoder)
			if s.Name == "" && s.NameRange == "" {
				s.Name, s.NameRange = name, ref
			}
			return true
		case "cat", "xVal":
			s.XRange = parseFormula(decoder)
			return true
		case "val", "yVal":
			s.YRange = parseFormula(decoder)
			return true
		}
		return false
	})
	return s
}

func parseSeriesName(decoder *xml.Decoder) (name, ref string) {
	eachChild(decoder, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "f":
			ref = strings.TrimSpace(readElementText(decoder))
			return true
		case "v":
			name = strings.TrimSpace(readElementText(decoder))
			return true
		}
		return false
	})
	return name, ref
}

// parseFormula consumes a data reference element and returns its formula.
func parseFormula(decoder *xml.Decoder) string {
	var ref string
	eachChild(decoder, func(se xml.StartElement) bool {
		if se.Name.Local == "f" {
			if ref == "" {
				ref = strings.TrimSpace(readElementText(decoder))
			}
			return true
		}
		return false
	})
	return ref
}

// parseAxis consumes an axis element.
func parseAxis(decoder *xml.Decoder) (title, pos string) {
	eachChild(decoder, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "title":
			title = parseTitle(decoder)
			return true
		case "axPos":
			pos = attrValue(se, "val")
		}
		return false
	})
	return title, pos
}
