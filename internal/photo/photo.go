// Package photo decodes, scales down, and re-encodes uploaded images into
// size-bounded data URIs. Photos are stored inline in report records, so
// unconstrained originals are unacceptable.
package photo

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/disintegration/imaging"
)

var (
	ErrRead   = errors.New("photo: read failed")
	ErrDecode = errors.New("photo: decode failed")
)

const (
	maxWidth  = 800
	maxHeight = 600

	// Fixed encoder quality, matching the 0.7 factor the record format was
	// written with. Callers needing a different quality must extend the API.
	jpegQuality = 70
)

const dataURIPrefix = "data:image/jpeg;base64,"

// Compress reads one image, scales it down to fit the 800x600 bound with
// aspect ratio preserved (never up), and returns it as a JPEG data URI.
func Compress(r io.Reader) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	width, height := targetSize(img.Bounds().Dx(), img.Bounds().Dy())
	if width != img.Bounds().Dx() || height != img.Bounds().Dy() {
		img = imaging.Resize(img, width, height, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", fmt.Errorf("photo: encode failed: %w", err)
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// CompressAll processes files front to back, preserving order. The first
// failure aborts the whole batch; there is no partial-success result.
func CompressAll(readers []io.Reader) ([]string, error) {
	encoded := make([]string, 0, len(readers))
	for i, r := range readers {
		uri, err := Compress(r)
		if err != nil {
			return nil, fmt.Errorf("file %d: %w", i, err)
		}
		encoded = append(encoded, uri)
	}
	return encoded, nil
}

// Raw extracts the JPEG bytes from a data URI produced by Compress. The PDF
// export embeds these directly without re-encoding.
func Raw(dataURI string) ([]byte, error) {
	if len(dataURI) <= len(dataURIPrefix) || dataURI[:len(dataURIPrefix)] != dataURIPrefix {
		return nil, ErrDecode
	}
	raw, err := base64.StdEncoding.DecodeString(dataURI[len(dataURIPrefix):])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return raw, nil
}

// Decode parses a data URI produced by Compress back into an image.
func Decode(dataURI string) (image.Image, error) {
	raw, err := Raw(dataURI)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// targetSize clamps landscape images to the width bound and everything else
// to the height bound, scaling the other axis proportionally. Images already
// within bounds keep their dimensions.
func targetSize(width, height int) (int, int) {
	if width > height {
		if width > maxWidth {
			scaled := int(math.Round(float64(height) * maxWidth / float64(width)))
			return maxWidth, atLeastOne(scaled)
		}
		return width, height
	}
	if height > maxHeight {
		scaled := int(math.Round(float64(width) * maxHeight / float64(height)))
		return atLeastOne(scaled), maxHeight
	}
	return width, height
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
