package shadow

import "image"

// cardinals lists the 4-connected neighbor offsets: up, down, left, right.
var cardinals = [4]image.Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// cornerChecks maps each cardinal direction to the two diagonal offsets
// flanking that side. When exactly one cardinal neighbor is not
// transparent, the corner check inspects these two diagonals to tell a
// checkerboard hole apart from a sprite silhouette edge.
var cornerChecks = [4][2]image.Point{
	{{-1, -1}, {1, -1}}, // up: top-left, top-right
	{{-1, 1}, {1, 1}},   // down: bottom-left, bottom-right
	{{-1, -1}, {-1, 1}}, // left: top-left, bottom-left
	{{1, -1}, {1, 1}},   // right: top-right, bottom-right
}

// alphaPlane is a read-only copy of an image's alpha channel taken before
// the classification pass begins. Every classification and blend-target
// decision consults the plane, never alpha values rewritten earlier in the
// same pass, so iteration order cannot bias results.
type alphaPlane struct {
	w, h  int
	alpha []uint8
}

func snapshotAlpha(img *image.NRGBA) *alphaPlane {
	bounds := img.Bounds()
	p := &alphaPlane{
		w:     bounds.Dx(),
		h:     bounds.Dy(),
		alpha: make([]uint8, bounds.Dx()*bounds.Dy()),
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			p.alpha[i] = img.Pix[img.PixOffset(x, y)+3]
			i++
		}
	}

	return p
}

func (p *alphaPlane) at(x, y int) (uint8, bool) {
	if x < 0 || x >= p.w || y < 0 || y >= p.h {
		return 0, false
	}
	return p.alpha[y*p.w+x], true
}

// transparent reports whether the pixel exists and was fully transparent.
// Off-grid neighbors are not transparent: a sprite touching the image
// border is not automatically a shadow boundary.
func (p *alphaPlane) transparent(x, y int) bool {
	a, ok := p.at(x, y)
	return ok && a == 0
}

// solid reports whether the pixel exists and was solid artwork. An
// off-grid diagonal cannot be artwork, so the corner check treats it the
// same as a transparent one.
func (p *alphaPlane) solid(x, y int) bool {
	a, ok := p.at(x, y)
	return ok && a > AlphaLimit
}

// isShadowPixel decides whether the pixel at (x, y) belongs to a
// checkerboard shadow pattern. A solid pixel is a shadow pixel when all
// four cardinal neighbors exist and were transparent, or when exactly
// three were and the corner check on the remaining side does not find
// solid artwork on both flanking diagonals.
func (p *alphaPlane) isShadowPixel(x, y int) bool {
	a, ok := p.at(x, y)
	if !ok || a <= AlphaLimit {
		return false
	}

	count := 0
	opaqueSide := -1
	for i, d := range cardinals {
		if p.transparent(x+d.X, y+d.Y) {
			count++
		} else {
			opaqueSide = i
		}
	}

	switch count {
	case 4:
		return true
	case 3:
		// A single-pixel-wide sprite edge also shows three transparent
		// sides, but the artwork continues past its opaque side: both
		// diagonals flanking that side are solid. A checkerboard hole
		// leaves at least one of them transparent.
		for _, d := range cornerChecks[opaqueSide] {
			if !p.solid(x+d.X, y+d.Y) {
				return true
			}
		}
	}

	return false
}

// classifyAndShadow rewrites every checkerboard shadow pixel to alpha 128
// with each color channel halved, and returns the rewritten coordinates in
// raster order for the edge blender.
func classifyAndShadow(img *image.NRGBA, snap *alphaPlane) []image.Point {
	var shadows []image.Point

	origin := img.Bounds().Min
	for y := 0; y < snap.h; y++ {
		for x := 0; x < snap.w; x++ {
			if !snap.isShadowPixel(x, y) {
				continue
			}

			off := img.PixOffset(origin.X+x, origin.Y+y)
			img.Pix[off] /= 2
			img.Pix[off+1] /= 2
			img.Pix[off+2] /= 2
			img.Pix[off+3] = AlphaLimit

			shadows = append(shadows, image.Point{X: x, Y: y})
		}
	}

	return shadows
}
