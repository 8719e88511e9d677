package shadow

import "image"

// keyToTransparent sets alpha to zero for every pixel whose R, G and B
// channels each lie within tolerance of the target color, and returns the
// number of pixels keyed. RGB values are preserved.
func keyToTransparent(img *image.NRGBA, colorHex, tolerance int) int {
	targetR := uint8(colorHex >> 16)
	targetG := uint8(colorHex >> 8)
	targetB := uint8(colorHex)

	keyed := 0
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			off := img.PixOffset(x, y)
			if channelMatches(img.Pix[off], targetR, tolerance) &&
				channelMatches(img.Pix[off+1], targetG, tolerance) &&
				channelMatches(img.Pix[off+2], targetB, tolerance) {
				img.Pix[off+3] = 0
				keyed++
			}
		}
	}

	return keyed
}

func channelMatches(have, want uint8, tolerance int) bool {
	diff := int(have) - int(want)
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}
