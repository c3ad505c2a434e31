// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"math/rand"
	"testing"
)

// JPEG returns an encoded noise image; noise keeps the payload well above 1KB
func JPEG(t testing.TB, width, height int) []byte {
	t.Helper()

	rng := rand.New(rand.NewSource(42))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
				A: 255,
			})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("failed to encode jpeg: %v", err)
	}
	return buf.Bytes()
}

// PNG returns a small encoded PNG-like header padded to size bytes.
// Only the magic bytes matter for type sniffing.
func PNG(size int) []byte {
	data := make([]byte, size)
	copy(data, []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A})
	return data
}

// HTML returns a padded HTML error page
func HTML(size int) []byte {
	page := []byte("<!doctype html><html><body>502 Bad Gateway</body></html>")
	if size > len(page) {
		page = append(page, bytes.Repeat([]byte(" "), size-len(page))...)
	}
	return page
}
