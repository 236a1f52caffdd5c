// Package parser imports chart input from .xlsx workbooks: cell grids,
// print areas, detected table regions and chart drawings.
package parser

// EMUPerPixel is the number of English Metric Units per pixel at 96 DPI
// (914400 EMU per inch / 96).
const EMUPerPixel = 9525

// EMUToPixels converts drawing coordinates to whole pixels.
func EMUToPixels(emu int64) int {
	return int(emu / EMUPerPixel)
}
