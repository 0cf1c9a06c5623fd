package groundpix

import (
	"path/filepath"
	"testing"
)

func TestPathConventions(t *testing.T) {
	if got := RasterPath("imgs", "09.20.2024"); got != filepath.Join("imgs", "09.20.2024.tif") {
		t.Fatalf("raster path: %s", got)
	}
	if got := TablePath("gt", "09.20.2024"); got != filepath.Join("gt", "09.20.2024.csv") {
		t.Fatalf("table path: %s", got)
	}
}

func TestExtractionMerge(t *testing.T) {
	var all Extraction
	all.Merge(Extraction{
		Samples: []Sample{{Date: "d1", PixelRow: 1}, {Date: "d1", PixelRow: 2}},
		Skips:   SkipStats{OutOfBounds: 2, PixelOutOfRange: 1},
	})
	all.Merge(Extraction{
		Samples: []Sample{{Date: "d2", PixelRow: 3}},
		Skips:   SkipStats{OutOfBounds: 1, SampleReadFailure: 4},
	})
	if len(all.Samples) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(all.Samples))
	}
	for i, want := range []string{"d1", "d1", "d2"} {
		if all.Samples[i].Date != want {
			t.Fatalf("date order broken at %d: %+v", i, all.Samples)
		}
	}
	if all.Samples[0].PixelRow != 1 || all.Samples[1].PixelRow != 2 {
		t.Fatal("per-date row order broken")
	}
	want := SkipStats{OutOfBounds: 3, PixelOutOfRange: 1, SampleReadFailure: 4}
	if all.Skips != want {
		t.Fatalf("skip stats: got %+v, want %+v", all.Skips, want)
	}
	if all.Skips.Total() != 8 {
		t.Fatalf("skip total: %d", all.Skips.Total())
	}
}
