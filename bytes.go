package shadow

import (
	"bytes"
	"fmt"
	"image"
)

// DecodeImageBytes decodes raw image bytes into an image.Image, returning
// the decoded image and the detected format string.
func DecodeImageBytes(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty image data")
	}
	return Decode(bytes.NewReader(data))
}

// ConvertBytes converts the checkerboard shadows in raw image bytes and
// returns the result as PNG bytes, along with conversion details.
func ConvertBytes(data []byte, cfg Config) ([]byte, Info, error) {
	img, _, err := DecodeImageBytes(data)
	if err != nil {
		return nil, Info{}, err
	}

	converted, info, err := ConvertCheckerboardToAlpha(img, cfg)
	if err != nil {
		return nil, Info{}, err
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, converted); err != nil {
		return nil, Info{}, err
	}

	return buf.Bytes(), info, nil
}
