package photo

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"
)

func pngImage(t *testing.T, width, height int) *bytes.Reader {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestTargetSize(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		wantW      int
		wantH      int
	}{
		{"wide landscape clamps width", 1800, 600, 800, 267},
		{"within bounds untouched", 400, 300, 400, 300},
		{"tall portrait clamps height", 600, 1200, 300, 600},
		{"square clamps height", 1000, 1000, 600, 600},
		{"extreme aspect keeps one pixel", 10000, 10, 800, 1},
		{"landscape already narrow enough", 700, 500, 700, 500},
		{"portrait already short enough", 300, 500, 300, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotW, gotH := targetSize(tt.w, tt.h)
			if gotW != tt.wantW || gotH != tt.wantH {
				t.Errorf("targetSize(%d, %d) = %dx%d, want %dx%d", tt.w, tt.h, gotW, gotH, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestCompress_ScalesDownAndEncodesDataURI(t *testing.T) {
	uri, err := Compress(pngImage(t, 1800, 600))
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/jpeg;base64,") {
		t.Fatalf("expected JPEG data URI, got prefix %q", uri[:min(len(uri), 30)])
	}

	img, err := Decode(uri)
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 800 || bounds.Dy() != 267 {
		t.Errorf("expected 800x267, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestCompress_NeverScalesUp(t *testing.T) {
	uri, err := Compress(pngImage(t, 400, 300))
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	img, err := Decode(uri)
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 300 {
		t.Errorf("small image must keep its size, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestCompress_Deterministic(t *testing.T) {
	first, err := Compress(pngImage(t, 900, 450))
	if err != nil {
		t.Fatalf("first compress: %v", err)
	}
	second, err := Compress(pngImage(t, 900, 450))
	if err != nil {
		t.Fatalf("second compress: %v", err)
	}
	if first != second {
		t.Error("same input must produce identical output")
	}
}

func TestCompress_RejectsNonImage(t *testing.T) {
	_, err := Compress(strings.NewReader("definitely not an image"))
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestCompress_ReadFailure(t *testing.T) {
	_, err := Compress(failingReader{})
	if !errors.Is(err, ErrRead) {
		t.Errorf("expected ErrRead, got %v", err)
	}
}

func TestCompressAll_PreservesOrder(t *testing.T) {
	// Different source sizes produce different outputs, so order is
	// observable through the decoded dimensions.
	uris, err := CompressAll([]io.Reader{
		pngImage(t, 1600, 400),
		pngImage(t, 200, 100),
	})
	if err != nil {
		t.Fatalf("compress all: %v", err)
	}
	if len(uris) != 2 {
		t.Fatalf("expected 2 photos, got %d", len(uris))
	}

	first, err := Decode(uris[0])
	if err != nil {
		t.Fatalf("decode first: %v", err)
	}
	if first.Bounds().Dx() != 800 {
		t.Errorf("first photo should be the scaled wide one, got width %d", first.Bounds().Dx())
	}
	second, err := Decode(uris[1])
	if err != nil {
		t.Fatalf("decode second: %v", err)
	}
	if second.Bounds().Dx() != 200 {
		t.Errorf("second photo should keep width 200, got %d", second.Bounds().Dx())
	}
}

func TestCompressAll_FailsWholeBatch(t *testing.T) {
	_, err := CompressAll([]io.Reader{
		pngImage(t, 300, 300),
		strings.NewReader("broken"),
	})
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if !strings.Contains(err.Error(), "file 1") {
		t.Errorf("error should name the failing file index, got %q", err.Error())
	}
}

func TestDecode_RejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "data:image/jpeg;base64,", "data:image/jpeg;base64,!!!!"} {
		if _, err := Decode(input); !errors.Is(err, ErrDecode) {
			t.Errorf("Decode(%q): expected ErrDecode, got %v", input, err)
		}
	}
}
