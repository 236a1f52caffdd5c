package plotstruct

import (
	"errors"
	"fmt"
)

// ErrUnknownKind indicates a block kind without a trace builder.
var ErrUnknownKind = errors.New("unknown chart kind")

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx file.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// RenderError reports a failed step of a workbook render.
type RenderError struct {
	Sheet     string
	Component string // "cells", "range", "traces"
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error in sheet %q (%s): %v", e.Sheet, e.Component, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(sheet, component string, err error) *RenderError {
	return &RenderError{
		Sheet:     sheet,
		Component: component,
		Err:       err,
	}
}
