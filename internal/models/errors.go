package models

import "errors"

// Error taxonomy for the document generation pipeline.
//
// ErrMissingData aborts generation before any markup is produced.
// ErrLogoFetch is recoverable: the renderer omits the logo and continues.
// ErrRasterization aborts the whole generation; no partial file is produced.
var (
	ErrMissingData   = errors.New("cannot generate PDF: missing data")
	ErrLogoFetch     = errors.New("failed to fetch logo image")
	ErrRasterization = errors.New("failed to generate PDF")
)

// ErrNotFound marks lookups of records that don't exist; handlers map it to
// a 404 response.
var ErrNotFound = errors.New("record not found")
