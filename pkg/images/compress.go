// Package images handles cover image compression and storage. Covers are
// shrunk to a web-friendly size before upload; the public URL of the stored
// object is what gets persisted on the book document.
package images

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

const (
	// MaxBytes is the upper bound for a stored cover image.
	MaxBytes = 800 * 1024

	// MaxDimension is the longest edge after resizing.
	MaxDimension = 1920
)

// CompressCover decodes the uploaded image, fits it inside MaxDimension and
// re-encodes it as JPEG, stepping the quality down until the result is under
// MaxBytes. It returns an error if even the lowest quality step is too large.
func CompressCover(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode cover image: %w", err)
	}

	img = imaging.Fit(img, MaxDimension, MaxDimension, imaging.Lanczos)

	for quality := 85; quality >= 40; quality -= 15 {
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
			return nil, fmt.Errorf("failed to encode cover image: %w", err)
		}
		if buf.Len() <= MaxBytes {
			return buf.Bytes(), nil
		}
	}

	return nil, fmt.Errorf("cover image exceeds %d bytes even at minimum quality", MaxBytes)
}
