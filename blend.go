package shadow

import "image"

const (
	// blendAlphaStep is the alpha added to a transparent neighbor per
	// contributing shadow pixel.
	blendAlphaStep = 32
	// blendColorShift divides each shadow color channel by four before it
	// is added to a neighbor.
	blendColorShift = 2
)

// blendEdges anti-aliases the shadow boundary. Each shadow pixel leaks a
// quarter of its converted color and a step of alpha into the cardinal
// neighbors that were fully transparent in the pre-classification
// snapshot. Contributions accumulate when several shadow pixels share a
// neighbor; once a channel saturates the visitation order can matter,
// which stays within the clamp. Returns the number of distinct pixels
// touched.
func blendEdges(img *image.NRGBA, snap *alphaPlane, shadows []image.Point) int {
	blended := 0

	origin := img.Bounds().Min
	for _, s := range shadows {
		off := img.PixOffset(origin.X+s.X, origin.Y+s.Y)
		shadowR := img.Pix[off]
		shadowG := img.Pix[off+1]
		shadowB := img.Pix[off+2]

		for _, d := range cardinals {
			nx, ny := s.X+d.X, s.Y+d.Y
			if !snap.transparent(nx, ny) {
				continue
			}

			noff := img.PixOffset(origin.X+nx, origin.Y+ny)
			if img.Pix[noff+3] == 0 {
				// First contribution: establish a black base so the
				// blend does not pick up the keyed-out color.
				img.Pix[noff] = 0
				img.Pix[noff+1] = 0
				img.Pix[noff+2] = 0
				blended++
			}

			img.Pix[noff] = addClamp(img.Pix[noff], shadowR>>blendColorShift)
			img.Pix[noff+1] = addClamp(img.Pix[noff+1], shadowG>>blendColorShift)
			img.Pix[noff+2] = addClamp(img.Pix[noff+2], shadowB>>blendColorShift)
			img.Pix[noff+3] = addClamp(img.Pix[noff+3], blendAlphaStep)
		}
	}

	return blended
}

func addClamp(a, b uint8) uint8 {
	sum := int(a) + int(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}
