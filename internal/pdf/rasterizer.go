// Package pdf turns rendered invoice HTML into a paginated PDF document.
// The HTML is rasterized to a single tall PNG by an external tool, sliced
// into A4-sized pages and reassembled into a PDF.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"os/exec"
)

// Rendered pixel geometry: A4 at 96dpi is 794x1123 CSS pixels, captured at
// 2x scale for print-quality output.
const (
	PageWidthPx  = 1588
	PageHeightPx = 2246
)

// Rasterizer renders an HTML document to a single image of the full content
// height.
type Rasterizer interface {
	Rasterize(ctx context.Context, html string) (image.Image, error)
}

// WkhtmltoimageRasterizer shells out to wkhtmltoimage. The binary path is
// configurable so deployments can point at a wrapper script.
type WkhtmltoimageRasterizer struct {
	bin string
}

func NewWkhtmltoimageRasterizer(bin string) *WkhtmltoimageRasterizer {
	return &WkhtmltoimageRasterizer{bin: bin}
}

func (r *WkhtmltoimageRasterizer) Rasterize(ctx context.Context, html string) (image.Image, error) {
	inputFile, err := os.CreateTemp("", "invoice_html_*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp html file: %w", err)
	}
	defer os.Remove(inputFile.Name())

	outputFile, err := os.CreateTemp("", "invoice_png_*.png")
	if err != nil {
		inputFile.Close()
		return nil, fmt.Errorf("failed to create temp png file: %w", err)
	}
	defer os.Remove(outputFile.Name())
	outputFile.Close()

	if _, err := inputFile.WriteString(html); err != nil {
		inputFile.Close()
		return nil, fmt.Errorf("failed to write html to temp file: %w", err)
	}
	inputFile.Close()

	cmd := exec.CommandContext(ctx, r.bin,
		"--format", "png",
		"--width", fmt.Sprintf("%d", PageWidthPx),
		"--zoom", "2",
		"--encoding", "utf-8",
		"--quiet",
		inputFile.Name(),
		outputFile.Name(),
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s failed: %w, stderr: %s", r.bin, err, stderr.String())
	}

	out, err := os.Open(outputFile.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to open rasterized image: %w", err)
	}
	defer out.Close()

	img, err := png.Decode(out)
	if err != nil {
		return nil, fmt.Errorf("failed to decode rasterized image: %w", err)
	}

	slog.Info("rasterized invoice html",
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy())

	return img, nil
}
