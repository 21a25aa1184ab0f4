package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestThumbnail(t *testing.T) {
	src := testPNG(t, 300, 300)

	out, err := Thumbnail(src, 150)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 150 || b.Dy() != 150 {
		t.Errorf("thumbnail = %dx%d, want 150x150", b.Dx(), b.Dy())
	}
}

func TestThumbnailKeepsAspectRatio(t *testing.T) {
	src := testPNG(t, 400, 200)

	out, err := Thumbnail(src, 100)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("thumbnail = %dx%d, want 100x50", b.Dx(), b.Dy())
	}
}

func TestThumbnailRejectsGarbage(t *testing.T) {
	if _, err := Thumbnail([]byte("bukan image"), 100); err == nil {
		t.Error("garbage input accepted")
	}
}

func TestEncodeWebP(t *testing.T) {
	src := testPNG(t, 64, 64)

	out, err := EncodeWebP(src)
	if err != nil {
		t.Fatalf("EncodeWebP: %v", err)
	}
	// container RIFF....WEBP
	if len(out) < 12 || string(out[0:4]) != "RIFF" || string(out[8:12]) != "WEBP" {
		t.Error("output is not a WebP container")
	}
}
