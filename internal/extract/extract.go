// Package extract converts uploaded documents (PDF, DOCX, images, plain
// text) into raw text. Extraction never fails: every stage error degrades to
// empty text for that stage, and the best text obtained wins.
package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"resume-evaluator/internal/extract/ocr"
	"resume-evaluator/internal/shared/telemetry"
)

const (
	// minTextLength is the low-yield threshold below which the OCR
	// fallback kicks in for PDFs and images.
	minTextLength = 120

	// ocrDPI is the raster resolution for OCR'd PDF pages.
	ocrDPI = 300
)

// ErrNoDocument is the one boundary condition callers must reject before
// invoking the pipeline.
var ErrNoDocument = errors.New("no document supplied")

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".tiff"}

// Extractor pulls text from documents, with an optional OCR fallback for
// scanned PDFs and images. A nil OCR engine or renderer disables that path.
type Extractor struct {
	engine   ocr.Engine
	renderer ocr.PageRenderer
}

// New constructs an Extractor. engine and renderer may be nil when OCR is not
// configured.
func New(engine ocr.Engine, renderer ocr.PageRenderer) *Extractor {
	return &Extractor{engine: engine, renderer: renderer}
}

// Extract returns the best text obtainable from the document, classified by
// file-name extension. Native extraction runs first; if a PDF or image yields
// fewer than 120 trimmed characters, OCR re-attempts and the longer result is
// kept. The result may be empty but extraction itself never errors.
func (e *Extractor) Extract(ctx context.Context, data []byte, fileName string) string {
	name := strings.ToLower(fileName)

	var text string
	switch {
	case strings.HasSuffix(name, ".pdf"):
		text = extractPDF(data)
	case strings.HasSuffix(name, ".docx"), strings.HasSuffix(name, ".doc"):
		text = extractDOCX(data)
	case hasImageExtension(name):
		text = e.ocrImage(ctx, data)
	default:
		text = plainText(data)
	}

	if strings.HasSuffix(name, ".pdf") && lowYield(text) {
		if ocrText := e.ocrPDF(ctx, data); longerTrimmed(ocrText, text) {
			text = ocrText
		}
	}

	if hasImageExtension(name) && lowYield(text) {
		if retry := e.ocrImage(ctx, data); longerTrimmed(retry, text) {
			text = retry
		}
	}

	return text
}

func lowYield(text string) bool {
	return len(strings.TrimSpace(text)) < minTextLength
}

func longerTrimmed(candidate, current string) bool {
	trimmed := strings.TrimSpace(candidate)
	return trimmed != "" && len(trimmed) > len(strings.TrimSpace(current))
}

func hasImageExtension(name string) bool {
	for _, ext := range imageExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// extractPDF reads the native text layer. The pdf library panics on some
// malformed files, so the recover keeps the never-fails contract.
func extractPDF(data []byte) (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			telemetry.Error("extract.pdf.panic", map[string]any{"error": rec})
			text = ""
		}
	}()

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		telemetry.Error("extract.pdf.failed", map[string]any{"err": err.Error()})
		return ""
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		telemetry.Error("extract.pdf.failed", map[string]any{"err": err.Error()})
		return ""
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return ""
	}
	return buf.String()
}

func extractDOCX(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	readerAt := bytes.NewReader(data)
	zr, err := zip.NewReader(readerAt, int64(len(data)))
	if err != nil {
		telemetry.Error("extract.docx.failed", map[string]any{"err": err.Error()})
		return ""
	}

	var docFile *zip.File
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		telemetry.Error("extract.docx.failed", map[string]any{"err": "document.xml not found"})
		return ""
	}

	rc, err := docFile.Open()
	if err != nil {
		return ""
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return ""
	}

	return stripDocxXML(string(raw))
}

func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ""
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

// plainText decodes the payload as UTF-8, dropping undecodable bytes.
func plainText(data []byte) string {
	return strings.ToValidUTF8(string(data), "")
}

// ocrImage recognizes a single image, or returns empty when OCR is not wired.
func (e *Extractor) ocrImage(ctx context.Context, data []byte) string {
	if e.engine == nil {
		return ""
	}
	text, err := e.engine.Recognize(ctx, data)
	if err != nil {
		telemetry.Error("extract.ocr.failed", map[string]any{"err": err.Error()})
		return ""
	}
	return text
}

// ocrPDF rasterizes each page at 300 DPI and OCRs them, joining page texts
// with newlines. Per-page failures degrade to empty text for that page.
func (e *Extractor) ocrPDF(ctx context.Context, data []byte) string {
	if e.engine == nil || e.renderer == nil {
		return ""
	}

	pages, err := e.renderer.RenderPages(ctx, data, ocrDPI)
	if err != nil {
		telemetry.Error("extract.ocr.render_failed", map[string]any{"err": err.Error()})
		return ""
	}

	parts := make([]string, 0, len(pages))
	for _, page := range pages {
		text, err := e.engine.Recognize(ctx, page)
		if err != nil {
			telemetry.Error("extract.ocr.failed", map[string]any{"err": err.Error()})
			continue
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n")
}
