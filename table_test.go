package groundpix

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testToolbox() *Toolbox {
	return &Toolbox{logTag: "Toolbox:"}
}

func writeTestCsv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gt.csv")
	if err := os.WriteFile(path, []byte(content), os.ModePerm); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadGroundTruth(t *testing.T) {
	csv := "Longitude , Latitude ,Chlorophyll, Plant health \n" +
		"-117.8251,34.0561,31.2,Good\n" +
		"nope,34.0562,30.0,Poor\n" +
		"-117.8252,34.0563,28.4,\n"
	g := testToolbox()
	pts, err := g.LoadGroundTruth(writeTestCsv(t, csv))
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 2 {
		t.Fatalf("expected 2 points, got %d", len(pts))
	}
	if pts[0].Longitude != -117.8251 || pts[0].Latitude != 34.0561 {
		t.Fatalf("bad first point: %+v", pts[0])
	}
	if pts[0].Chlorophyll != "31.2" || pts[0].PlantHealth != "Good" {
		t.Fatalf("bad first labels: %+v", pts[0])
	}
	// 缺失健康标签的行在加载阶段保留，由清洗阶段剔除
	if pts[1].PlantHealth != "" {
		t.Fatalf("expected empty plant health, got %q", pts[1].PlantHealth)
	}
}

func TestLoadGroundTruthMissingColumn(t *testing.T) {
	csv := "Longitude,Latitude,Plant health\n-117.8,34.0,Good\n"
	g := testToolbox()
	_, err := g.LoadGroundTruth(writeTestCsv(t, csv))
	if err == nil || !strings.Contains(err.Error(), "Chlorophyll") {
		t.Fatalf("expected missing column error, got %v", err)
	}
}

func TestLoadGroundTruthEmpty(t *testing.T) {
	g := testToolbox()
	if _, err := g.LoadGroundTruth(writeTestCsv(t, "")); err != ErrEmptyTable {
		t.Fatalf("expected ErrEmptyTable, got %v", err)
	}
}

func TestLoadGroundTruthMissingFile(t *testing.T) {
	g := testToolbox()
	if _, err := g.LoadGroundTruth(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
