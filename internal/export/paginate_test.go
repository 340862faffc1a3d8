package export

import (
	"image"
	"image/color"
	"testing"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestPaginateSinglePage(t *testing.T) {
	src := solidImage(PageWidth, 500, color.RGBA{R: 200, A: 255})
	pages := Paginate(src)

	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	if pages[0].Bounds().Dx() != PageWidth || pages[0].Bounds().Dy() != PageHeight {
		t.Fatalf("unexpected page bounds: %v", pages[0].Bounds())
	}
}

func TestPaginatePageCount(t *testing.T) {
	tests := []struct {
		height int
		want   int
	}{
		{1, 1},
		{PageHeight, 1},
		{PageHeight + 1, 2},
		{PageHeight * 3, 3},
		{PageHeight*2 + 10, 3},
	}
	for _, tc := range tests {
		src := solidImage(PageWidth, tc.height, color.RGBA{B: 255, A: 255})
		pages := Paginate(src)
		if len(pages) != tc.want {
			t.Fatalf("height %d: expected %d pages, got %d", tc.height, tc.want, len(pages))
		}
	}
}

func TestPaginateShiftsOffsetPerPage(t *testing.T) {
	// Top half red, bottom half blue; each color lands on its own page.
	src := image.NewRGBA(image.Rect(0, 0, PageWidth, PageHeight*2))
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	for y := 0; y < PageHeight*2; y++ {
		c := red
		if y >= PageHeight {
			c = blue
		}
		for x := 0; x < PageWidth; x++ {
			src.SetRGBA(x, y, c)
		}
	}

	pages := Paginate(src)
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if got := pages[0].RGBAAt(10, 10); got != red {
		t.Fatalf("page 1 should carry the top slice, got %v", got)
	}
	if got := pages[1].RGBAAt(10, 10); got != blue {
		t.Fatalf("page 2 should carry the shifted slice, got %v", got)
	}
}

func TestPaginatePadsLastPageWhite(t *testing.T) {
	src := solidImage(PageWidth, 100, color.RGBA{G: 255, A: 255})
	pages := Paginate(src)

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if got := pages[0].RGBAAt(10, PageHeight-10); got != white {
		t.Fatalf("expected white padding below content, got %v", got)
	}
}

func TestPaginateScalesWideImageToPageWidth(t *testing.T) {
	src := solidImage(PageWidth*2, PageHeight, color.RGBA{R: 128, G: 128, B: 128, A: 255})
	pages := Paginate(src)

	// Scaling halves the height too, so one page holds everything.
	if len(pages) != 1 {
		t.Fatalf("expected 1 page after scaling, got %d", len(pages))
	}
	if pages[0].Bounds().Dx() != PageWidth {
		t.Fatalf("page width: got %d", pages[0].Bounds().Dx())
	}
}
