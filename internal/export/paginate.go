package export

import (
	"image"
	stddraw "image/draw"

	"golang.org/x/image/draw"
)

// A4 portrait at 96 DPI.
const (
	PageWidth  = 794
	PageHeight = 1123
)

// Paginate slices a tall snapshot into fixed-size A4 pages. The source
// is first scaled to the page width, then the loop keeps emitting
// pages while image height remains, shifting the vertical offset by
// one page height each step. The last page is padded with white.
func Paginate(src image.Image) []*image.RGBA {
	scaled := scaleToPageWidth(src)
	total := scaled.Bounds().Dy()

	var pages []*image.RGBA
	offset := 0
	for remaining := total; remaining > 0; remaining -= PageHeight {
		page := image.NewRGBA(image.Rect(0, 0, PageWidth, PageHeight))
		stddraw.Draw(page, page.Bounds(), image.White, image.Point{}, stddraw.Src)

		sliceHeight := remaining
		if sliceHeight > PageHeight {
			sliceHeight = PageHeight
		}
		stddraw.Draw(page,
			image.Rect(0, 0, PageWidth, sliceHeight),
			scaled,
			image.Pt(0, offset),
			stddraw.Src,
		)
		pages = append(pages, page)
		offset += PageHeight
	}
	return pages
}

func scaleToPageWidth(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	if bounds.Dx() == PageWidth {
		out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		stddraw.Draw(out, out.Bounds(), src, bounds.Min, stddraw.Src)
		return out
	}

	height := bounds.Dy() * PageWidth / bounds.Dx()
	if height < 1 {
		height = 1
	}
	out := image.NewRGBA(image.Rect(0, 0, PageWidth, height))
	draw.CatmullRom.Scale(out, out.Bounds(), src, bounds, draw.Src, nil)
	return out
}
