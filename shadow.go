package shadow

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"strings"
)

// AlphaLimit separates solid pixels from everything else: a pixel is solid
// when its alpha is strictly greater than AlphaLimit. Converted shadow
// pixels are written with exactly this alpha, so a second classification
// pass never picks them up again.
const AlphaLimit = 128

// Info reports what a conversion did to an image.
type Info struct {
	Width  int
	Height int
	// KeyedPixels is the number of pixels the color keyer set transparent.
	KeyedPixels int
	// ShadowPixels is the number of checkerboard pixels rewritten as shadow.
	ShadowPixels int
	// BlendedPixels is the number of transparent pixels the edge blender
	// touched at least once.
	BlendedPixels int
}

// ConvertColorToTransparent returns a copy of img in which every pixel
// whose R, G and B channels each lie within tolerance of the 24-bit
// colorHex has its alpha set to zero. RGB values are left in place, so
// nothing is lost if keying is later disabled.
func ConvertColorToTransparent(img image.Image, colorHex, tolerance int) (*image.NRGBA, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image provided")
	}

	dst := cloneToNRGBA(img)
	keyToTransparent(dst, colorHex, tolerance)
	return dst, nil
}

// ConvertCheckerboardToAlpha converts the checkerboard shadow pattern in
// img to alpha transparency. It runs three ordered whole-image passes:
// the color keyer (skipped when cfg.TransparencyColor is ColorNone), the
// shadow classifier, and the edge blender. The result is a new
// *image.NRGBA; the input image is never mutated.
func ConvertCheckerboardToAlpha(img image.Image, cfg Config) (*image.NRGBA, Info, error) {
	if img == nil {
		return nil, Info{}, fmt.Errorf("nil image provided")
	}

	dst := cloneToNRGBA(img)
	info := Info{Width: dst.Rect.Dx(), Height: dst.Rect.Dy()}

	if cfg.TransparencyColor != ColorNone {
		info.KeyedPixels = keyToTransparent(dst, cfg.TransparencyColor, cfg.Tolerance)
	}

	// Classification and blending both consult the same pre-pass snapshot
	// of the alpha plane: classification so that rewrites cannot bias
	// later decisions, blending so that accumulated contributions keep
	// targeting the pixels that were transparent when the pass began.
	snap := snapshotAlpha(dst)
	shadows := classifyAndShadow(dst, snap)
	info.ShadowPixels = len(shadows)
	info.BlendedPixels = blendEdges(dst, snap, shadows)

	return dst, info, nil
}

// ConvertFile reads the image at inputPath, converts its checkerboard
// shadows, and writes the result as PNG to outputPath. An empty outputPath
// derives the destination from inputPath via OutputPathFor. A failed
// conversion produces no output file.
func ConvertFile(inputPath, outputPath string, cfg Config) (*image.NRGBA, Info, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return nil, Info{}, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	img, _, err := Decode(in)
	if err != nil {
		return nil, Info{}, fmt.Errorf("decode %s: %w", inputPath, err)
	}

	converted, info, err := ConvertCheckerboardToAlpha(img, cfg)
	if err != nil {
		return nil, Info{}, err
	}

	if outputPath == "" {
		outputPath = OutputPathFor(inputPath)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, Info{}, fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	if err := EncodePNG(out, converted); err != nil {
		return nil, Info{}, fmt.Errorf("encode %s: %w", outputPath, err)
	}

	return converted, info, nil
}

// OutputPathFor derives an output path from an input path by replacing its
// extension with .png.
func OutputPathFor(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".png"
}

// cloneToNRGBA copies the image into a zero-origin, non-premultiplied RGBA
// buffer. Non-premultiplied channels matter here: keyed pixels keep their
// RGB values at alpha zero.
func cloneToNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
	return dst
}
