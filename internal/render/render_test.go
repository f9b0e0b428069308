package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
)

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette("#FFF, #000 ,ff8800")
	if err != nil {
		t.Fatalf("ParsePalette: %v", err)
	}
	want := Palette{
		{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		{R: 0, G: 0, B: 0, A: 0xff},
		{R: 0xff, G: 0x88, B: 0x00, A: 0xff},
	}
	if len(p) != len(want) {
		t.Fatalf("got %d colors, want %d", len(p), len(want))
	}
	for i := range want {
		if p[i] != want[i] {
			t.Fatalf("color %d = %v, want %v", i, p[i], want[i])
		}
	}
	if p.String() != "#FFFFFF,#000000,#FF8800" {
		t.Fatalf("String() = %q", p.String())
	}
	for _, bad := range []string{"", "#12", "#GGGGGG", ",,"} {
		if _, err := ParsePalette(bad); err == nil {
			t.Fatalf("ParsePalette(%q) should fail", bad)
		}
	}
}

func TestPaletteClamps(t *testing.T) {
	p := DefaultPalette()
	if p.Color(5) != p[1] || p.Color(-1) != p[0] {
		t.Fatal("out-of-range indices should clamp")
	}
	if (Palette{}).Color(0) != (color.RGBA{}) {
		t.Fatal("empty palette should yield transparent black")
	}
}

func TestPixelsFillClips(t *testing.T) {
	px := NewPixels(4, 3, DefaultPalette())
	px.FillRect(0, -2, -2, 10, 10)
	px.FillRect(1, 3, 2, 4, 4)

	img := px.Image()
	if got := img.RGBAAt(0, 0); got != DefaultPalette()[0] {
		t.Fatalf("pixel (0,0) = %v", got)
	}
	if got := img.RGBAAt(3, 2); got != DefaultPalette()[1] {
		t.Fatalf("pixel (3,2) = %v", got)
	}
	if got := img.RGBAAt(2, 2); got != DefaultPalette()[0] {
		t.Fatalf("pixel (2,2) = %v", got)
	}
	px.FillRect(1, 10, 10, 2, 2) // entirely outside
}

func TestPixelsResize(t *testing.T) {
	px := NewPixels(2, 2, DefaultPalette())
	px.Resize(5, 1)
	if w, h := px.Size(); w != 5 || h != 1 || len(px.Bytes()) != 20 {
		t.Fatalf("size after resize %dx%d, %d bytes", w, h, len(px.Bytes()))
	}
}

func TestCanvasEncodesPNG(t *testing.T) {
	c := NewCanvas(8, 8, DefaultPalette())
	defer c.Close()
	c.FillRect(1, 0, 0, 8, 8)
	c.FillRect(0, 0, 0, 4, 4)
	if err := c.Err(); err != nil {
		t.Fatalf("fill: %v", err)
	}

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Fatalf("bounds %v", b)
	}
	r, _, _, _ := img.At(1, 1).RGBA()
	if r>>8 != 0xff {
		t.Fatalf("pixel (1,1) red = %d, want white", r>>8)
	}
	r, _, _, _ = img.At(6, 6).RGBA()
	if r>>8 != 0 {
		t.Fatalf("pixel (6,6) red = %d, want black", r>>8)
	}
}
