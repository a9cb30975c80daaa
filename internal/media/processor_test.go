package media

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestInspectorAcceptsPNG(t *testing.T) {
	data := pngBytes(t, 20, 10)
	p := NewInspector(1<<20, 100)

	res, err := p.Process(context.Background(), Upload{
		Reader:      bytes.NewReader(data),
		Size:        int64(len(data)),
		FileName:    "malecon.png",
		ContentType: "image/png",
	}, 0)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if res.ContentType != "image/png" || res.Extension != ".png" {
		t.Fatalf("unexpected content type %q ext %q", res.ContentType, res.Extension)
	}
	if res.Width != 20 || res.Height != 10 {
		t.Fatalf("unexpected dimensions %dx%d", res.Width, res.Height)
	}
	if !bytes.Equal(res.Bytes, data) {
		t.Fatalf("expected bytes to be passed through unchanged")
	}
}

func TestInspectorUsesDecodedFormat(t *testing.T) {
	data := pngBytes(t, 4, 4)
	res, err := NewInspector(0, 0).Process(context.Background(), Upload{
		Reader:      bytes.NewReader(data),
		ContentType: "image/jpeg",
	}, 0)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if res.ContentType != "image/png" {
		t.Fatalf("expected decoded png content type, got %q", res.ContentType)
	}
}

func TestInspectorRejections(t *testing.T) {
	data := pngBytes(t, 50, 50)
	cases := []struct {
		name   string
		p      *Inspector
		upload Upload
		maxDim int
		want   error
	}{
		{"empty", NewInspector(0, 0), Upload{Reader: bytes.NewReader(nil)}, 0, ErrEmptyImage},
		{"nil reader", NewInspector(0, 0), Upload{}, 0, ErrEmptyImage},
		{"declared size", NewInspector(10, 0), Upload{Reader: bytes.NewReader(data), Size: 11}, 0, ErrImageTooLarge},
		{"actual size", NewInspector(10, 0), Upload{Reader: bytes.NewReader(data)}, 0, ErrImageTooLarge},
		{"type", NewInspector(0, 0), Upload{Reader: strings.NewReader("hello"), ContentType: "text/plain"}, 0, ErrUnsupportedType},
		{"not an image", NewInspector(0, 0), Upload{Reader: strings.NewReader("hello"), ContentType: "image/png"}, 0, ErrUnsupportedType},
		{"dimension", NewInspector(0, 40), Upload{Reader: bytes.NewReader(data), ContentType: "image/png"}, 0, ErrDimensionTooLarge},
		{"dimension override", NewInspector(0, 100), Upload{Reader: bytes.NewReader(data), ContentType: "image/png"}, 30, ErrDimensionTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.p.Process(context.Background(), tc.upload, tc.maxDim)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestNormalizeContentType(t *testing.T) {
	cases := map[[2]string]string{
		{"image/JPG", ""}:                     "image/jpeg",
		{"image/png; charset=binary", ""}:     "image/png",
		{"", "photo.webp"}:                    "image/webp",
		{"application/octet-stream", "a.gif"}: "image/gif",
		{"", "noext"}:                         "image/jpeg",
	}
	for in, want := range cases {
		if got := normalizeContentType(in[0], in[1]); got != want {
			t.Fatalf("normalizeContentType(%q, %q) = %q, want %q", in[0], in[1], got, want)
		}
	}
}
