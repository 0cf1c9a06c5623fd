package groundpix

import (
	"image/color"
	"testing"
)

func TestGrayImage(t *testing.T) {
	f := newTestFrame(t)
	f.channels[0][3*f.Width+4] = 99
	f.channels[0][0] = 300 // 超出8bit范围截断
	img := f.GrayImage()
	if img.Bounds().Dx() != f.Width || img.Bounds().Dy() != f.Height {
		t.Fatalf("bad image size: %v", img.Bounds())
	}
	if got := img.RGBAAt(4, 3); got.R != 99 || got.G != 99 || got.B != 99 {
		t.Fatalf("gray value mismatch: %+v", got)
	}
	if got := img.RGBAAt(0, 0); got.R != 255 {
		t.Fatalf("clamp mismatch: %+v", got)
	}
}

func TestMarkSample(t *testing.T) {
	f := newTestFrame(t)
	img := f.GrayImage()
	markSample(img, 5, 3)
	want := color.RGBA{R: 255, A: 255}
	for _, p := range [][2]int{{5, 3}, {4, 2}, {6, 4}} {
		if got := img.RGBAAt(p[0], p[1]); got != want {
			t.Fatalf("pixel (%d,%d) not marked: %+v", p[0], p[1], got)
		}
	}
	// 边界外标记不应panic
	markSample(img, 0, 0)
	markSample(img, 9, 9)
}
