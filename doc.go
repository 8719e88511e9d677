// Package shadow converts checkerboard (dithered) shadow patterns in
// bitmap images into smooth alpha-blended shadows.
//
// Sprites from older game engines fake partial transparency by alternating
// fully opaque and fully transparent pixels. The converter optionally keys
// a background color to transparency, rewrites the pixels classified as
// checkerboard shadow into darkened half-alpha pixels, and blends a
// fraction of the shadow color into adjacent transparent pixels to smooth
// the shadow edge. The package works entirely in memory; no network or GPU
// is required.
package shadow
