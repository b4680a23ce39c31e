package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log/slog"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"invoice-service/internal/models"
)

// Document is a finished invoice PDF plus the filename clients should save
// it under.
type Document struct {
	Filename string
	PDF      []byte
}

// Generator drives the rasterize-slice-assemble pipeline.
type Generator struct {
	rasterizer Rasterizer
}

func NewGenerator(rasterizer Rasterizer) *Generator {
	return &Generator{rasterizer: rasterizer}
}

// Generate converts rendered invoice HTML into a paginated A4 PDF. Unlike a
// failed logo fetch, any failure here aborts the whole operation; a truncated
// or blank document must never reach the client.
func (g *Generator) Generate(ctx context.Context, invoiceNumber, html string) (*Document, error) {
	img, err := g.rasterizer.Rasterize(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrRasterization, err)
	}

	pages := slicePages(img)

	pdfBytes, err := assemblePDF(pages)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrRasterization, err)
	}

	slog.Info("generated invoice PDF",
		"invoice_number", invoiceNumber,
		"pages", len(pages),
		"size_bytes", len(pdfBytes))

	return &Document{
		Filename: fmt.Sprintf("Invoice-%s.pdf", invoiceNumber),
		PDF:      pdfBytes,
	}, nil
}

// slicePages cuts the full-height render into A4-sized page images. Content
// ending exactly on a page boundary yields exactly that many pages; a partial
// last page is padded with white to full height so every PDF page has the
// same dimensions.
func slicePages(img image.Image) []image.Image {
	bounds := img.Bounds()
	height := bounds.Dy()

	pageCount := height / PageHeightPx
	if height%PageHeightPx != 0 {
		pageCount++
	}
	if pageCount == 0 {
		pageCount = 1
	}

	pages := make([]image.Image, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		page := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), PageHeightPx))
		draw.Draw(page, page.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

		srcOrigin := image.Point{X: bounds.Min.X, Y: bounds.Min.Y + i*PageHeightPx}
		draw.Draw(page, page.Bounds(), img, srcOrigin, draw.Over)

		pages = append(pages, page)
	}
	return pages
}

// assemblePDF encodes each page image as PNG and imports them as full A4
// pages of a fresh PDF.
func assemblePDF(pages []image.Image) ([]byte, error) {
	readers := make([]io.Reader, 0, len(pages))
	for i, page := range pages {
		var pageBuf bytes.Buffer
		if err := png.Encode(&pageBuf, page); err != nil {
			return nil, fmt.Errorf("failed to encode page %d: %w", i+1, err)
		}
		readers = append(readers, &pageBuf)
	}

	imp, err := api.Import("form:A4, pos:full", types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("failed to build import spec: %w", err)
	}

	var buf bytes.Buffer
	if err := api.ImportImages(nil, &buf, readers, imp, nil); err != nil {
		return nil, fmt.Errorf("failed to assemble PDF: %w", err)
	}
	return buf.Bytes(), nil
}
