package shadow

import (
	"image/color"
	"testing"
)

func TestKeyToTransparent(t *testing.T) {
	img := newTransparentImage(2, 1)
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 255})

	keyed := keyToTransparent(img, ColorWhite, 0)
	if keyed != 1 {
		t.Fatalf("keyed %d pixels, want 1", keyed)
	}

	got := img.NRGBAAt(0, 0)
	if got.A != 0 {
		t.Fatalf("white pixel alpha = %d, want 0", got.A)
	}
	if got.R != 255 || got.G != 255 || got.B != 255 {
		t.Fatalf("keying destroyed RGB: %+v", got)
	}
	if img.NRGBAAt(1, 0).A != 255 {
		t.Fatalf("non-matching pixel was keyed")
	}
}

func TestKeyerTolerance(t *testing.T) {
	tests := []struct {
		name      string
		pixel     color.NRGBA
		tolerance int
		wantKeyed bool
	}{
		{"exact match", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, 0, true},
		{"off-white rejected at zero", color.NRGBA{R: 250, G: 252, B: 255, A: 255}, 0, false},
		{"off-white within tolerance", color.NRGBA{R: 250, G: 252, B: 255, A: 255}, 10, true},
		{"one channel out of tolerance", color.NRGBA{R: 240, G: 255, B: 255, A: 255}, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := newTransparentImage(1, 1)
			img.SetNRGBA(0, 0, tt.pixel)

			keyed := keyToTransparent(img, ColorWhite, tt.tolerance)
			if gotKeyed := keyed == 1; gotKeyed != tt.wantKeyed {
				t.Fatalf("keyed = %v, want %v", gotKeyed, tt.wantKeyed)
			}
		})
	}
}

func TestKeyerIdempotence(t *testing.T) {
	img := newTransparentImage(3, 1)
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 128, G: 30, B: 64, A: 255})
	img.SetNRGBA(2, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	once, err := ConvertColorToTransparent(img, ColorWhite, 0)
	if err != nil {
		t.Fatalf("first keying: %v", err)
	}
	twice, err := ConvertColorToTransparent(once, ColorWhite, 0)
	if err != nil {
		t.Fatalf("second keying: %v", err)
	}

	if !pixEqual(once, twice) {
		t.Fatalf("keying is not idempotent")
	}
}
