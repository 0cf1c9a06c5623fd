package groundpix

import (
	"math"
	"testing"
)

func TestScaleZoomIdentity(t *testing.T) {
	gt := GeoTransform{444720, 30, 0, 3751320, 0, -30}
	if got := gt.ScaleZoom(1.0); got != gt {
		t.Fatalf("identity zoom changed transform: %v -> %v", gt, got)
	}
}

func TestScaleZoom(t *testing.T) {
	gt := GeoTransform{100, 2, 0.5, 200, -0.5, -2}
	got := gt.ScaleZoom(1.5)
	want := GeoTransform{100, 3, 0.75, 200, -0.75, -3}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("coefficient %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestInvertPixelConvention(t *testing.T) {
	// a=1,b=0,c=0,d=0,e=-1,f=10：世界点(5.4,5.4)应得col=5.4、row=4.6
	gt := GeoTransform{0, 1, 0, 10, 0, -1}
	inv, err := gt.Invert()
	if err != nil {
		t.Fatal(err)
	}
	col, row := inv.Apply(5.4, 5.4)
	if math.Abs(col-5.4) > 1e-9 || math.Abs(row-4.6) > 1e-9 {
		t.Fatalf("got col=%v row=%v, want col=5.4 row=4.6", col, row)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	gt := GeoTransform{444720, 30, 1.5, 3751320, -0.7, -30}
	inv, err := gt.Invert()
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]float64{{0, 0}, {3.25, 7.5}, {100, 200}} {
		x, y := gt.Apply(p[0], p[1])
		col, row := inv.Apply(x, y)
		if math.Abs(col-p[0]) > 1e-6 || math.Abs(row-p[1]) > 1e-6 {
			t.Fatalf("round trip of %v: got (%v,%v)", p, col, row)
		}
	}
}

func TestInvertSingular(t *testing.T) {
	gt := GeoTransform{0, 0, 0, 0, 0, 0}
	if _, err := gt.Invert(); err != ErrBadTransform {
		t.Fatalf("expected ErrBadTransform, got %v", err)
	}
}

func TestWindowBounds(t *testing.T) {
	gt := GeoTransform{0, 1, 0, 10, 0, -1}
	b := gt.WindowBounds(10, 10)
	want := Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	if b != want {
		t.Fatalf("got %+v, want %+v", b, want)
	}
	if !b.Contains(5.4, 5.4) || b.Contains(-1, -1) || b.Contains(10.1, 5) {
		t.Fatal("bounds containment mismatch")
	}
}
