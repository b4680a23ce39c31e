package pdf

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-service/internal/models"
)

type fakeRasterizer struct {
	height int
	err    error
}

func (f *fakeRasterizer) Rasterize(_ context.Context, _ string) (image.Image, error) {
	if f.err != nil {
		return nil, f.err
	}
	img := image.NewRGBA(image.Rect(0, 0, PageWidthPx, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < PageWidthPx; x += 100 {
			img.Set(x, y, color.RGBA{R: 30, G: 30, B: 30, A: 255})
		}
	}
	return img, nil
}

func TestSlicePagesPageCount(t *testing.T) {
	tests := []struct {
		name   string
		height int
		pages  int
	}{
		{"short content", 500, 1},
		{"exactly one page", PageHeightPx, 1},
		{"one pixel over", PageHeightPx + 1, 2},
		{"exactly two pages", 2 * PageHeightPx, 2},
		{"two and a bit", 2*PageHeightPx + 300, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, PageWidthPx, tt.height))
			pages := slicePages(img)
			assert.Len(t, pages, tt.pages)
		})
	}
}

func TestSlicePagesUniformDimensions(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, PageWidthPx, PageHeightPx+700))
	pages := slicePages(img)
	require.Len(t, pages, 2)

	for i, page := range pages {
		assert.Equal(t, PageWidthPx, page.Bounds().Dx(), "page %d width", i+1)
		assert.Equal(t, PageHeightPx, page.Bounds().Dy(), "page %d height", i+1)
	}
}

func TestSlicePagesPadsLastPageWhite(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, PageWidthPx, PageHeightPx+10))
	for y := 0; y < PageHeightPx+10; y++ {
		for x := 0; x < PageWidthPx; x++ {
			src.Set(x, y, color.RGBA{R: 10, G: 10, B: 10, A: 255})
		}
	}

	pages := slicePages(src)
	require.Len(t, pages, 2)

	last := pages[1]
	r, g, b, _ := last.At(PageWidthPx/2, 5).RGBA()
	assert.NotEqual(t, uint32(0xffff), r, "top of last page holds content")

	r, g, b, _ = last.At(PageWidthPx/2, PageHeightPx-1).RGBA()
	assert.Equal(t, uint32(0xffff), r, "padded area is white")
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}

func TestGenerateProducesPDF(t *testing.T) {
	gen := NewGenerator(&fakeRasterizer{height: PageHeightPx + 200})

	doc, err := gen.Generate(context.Background(), "INV-2025-042", "<div>invoice</div>")
	require.NoError(t, err)

	assert.Equal(t, "Invoice-INV-2025-042.pdf", doc.Filename)
	require.Greater(t, len(doc.PDF), 4)
	assert.Equal(t, "%PDF", string(doc.PDF[:4]))
}

func TestGenerateRasterizerFailureAborts(t *testing.T) {
	gen := NewGenerator(&fakeRasterizer{err: errors.New("binary not found")})

	doc, err := gen.Generate(context.Background(), "INV-2025-042", "<div>invoice</div>")
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.True(t, errors.Is(err, models.ErrRasterization))
}
