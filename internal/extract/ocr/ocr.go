// Package ocr defines the optional OCR capabilities the text extractor can be
// wired with. Both are resolved once at startup from configuration; a nil
// capability simply disables the OCR fallback path.
package ocr

import "context"

// Engine recognizes text in a single image.
type Engine interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}

// PageRenderer rasterizes the pages of a PDF document at the given DPI,
// returning one encoded image per page.
type PageRenderer interface {
	RenderPages(ctx context.Context, document []byte, dpi int) ([][]byte, error)
}
