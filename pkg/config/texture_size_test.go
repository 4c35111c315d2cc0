package config

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestImageHeaderSize(t *testing.T) {
	cfg, err := ParseResourceConfig([]byte(validResourceYAML))
	if err != nil {
		t.Fatalf("ParseResourceConfig: %v", err)
	}

	files := map[string][]byte{
		"assets/images/cat_idle.png": encodePNG(t, 64, 16),
	}
	readFile := func(path string) ([]byte, error) {
		data, ok := files[path]
		if !ok {
			return nil, errors.New("not found: " + path)
		}
		return data, nil
	}
	size := ImageHeaderSize(cfg, readFile)

	w, h, err := size("IMAGE_CAT_IDLE")
	if err != nil {
		t.Fatalf("size(IMAGE_CAT_IDLE): %v", err)
	}
	if w != 64 || h != 16 {
		t.Errorf("size = %dx%d, want 64x16", w, h)
	}

	if _, _, err := size("IMAGE_MISSING"); err == nil {
		t.Error("unknown image id should fail")
	}
	if _, _, err := size("IMAGE_BALL"); err == nil {
		t.Error("unreadable file should fail")
	}

	files["assets/images/ball.png"] = []byte("not a png")
	if _, _, err := size("IMAGE_BALL"); err == nil {
		t.Error("corrupt png should fail")
	}
}
