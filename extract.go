package groundpix

import (
	"github.com/croplab/groundpix/log"

	"go.uber.org/zap"
)

// 单日期提取：加载影像与实测表，投影实测点并逐行采样
func (g *Toolbox) ExtractDate(tif, gtCsv, date string, zoom float64) (ext Extraction, err error) {
	log.Info(g.logTag+"processing date", zap.String("date", date),
		zap.String("tif", tif), zap.String("csv", gtCsv))
	frame, err := g.LoadRasterFrame(tif, zoom)
	if err != nil {
		return
	}
	pts, err := g.LoadGroundTruth(gtCsv)
	if err != nil {
		return
	}
	proj, err := g.NewPointProjector(frame)
	if err != nil {
		return
	}
	defer proj.Close()
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	ok := make([]bool, len(pts))
	for i, pt := range pts {
		xs[i] = pt.Longitude
		ys[i] = pt.Latitude
	}
	if err = proj.ProjectAll(xs, ys, ok); err != nil {
		log.Error(g.logTag+"project gt points failed", zap.String("date", date), zap.Error(err))
		return
	}
	ext = sampleRows(frame, pts, xs, ys, ok, date)
	log.Info(g.logTag+"date extracted", zap.String("date", date),
		zap.Int("samples", len(ext.Samples)), zap.Int("skipped", ext.Skips.Total()))
	return
}

// 逐行采样，保持输入行序，行级问题只跳过不报错
func sampleRows(f *RasterFrame, pts []GroundPoint, xs, ys []float64, ok []bool, date string) (ext Extraction) {
	for i, pt := range pts {
		x, y := xs[i], ys[i]
		if !ok[i] || !f.Bounds.Contains(x, y) {
			ext.Skips.OutOfBounds++
			log.Info("point out of bounds", zap.String("date", date),
				zap.Float64("x", x), zap.Float64("y", y))
			continue
		}
		row, col := f.PixelAt(x, y)
		if !f.InRange(row, col) {
			ext.Skips.PixelOutOfRange++
			log.Info("pixel out of range", zap.String("date", date),
				zap.Int("row", row), zap.Int("col", col))
			continue
		}
		vals, sampled := f.SampleAt(row, col)
		if !sampled {
			ext.Skips.SampleReadFailure++
			log.Warn("channel sample failed", zap.String("date", date),
				zap.Int("row", row), zap.Int("col", col))
			continue
		}
		ext.Samples = append(ext.Samples, Sample{
			Date:        date,
			PixelRow:    row,
			PixelCol:    col,
			Red:         vals[0],
			Green:       vals[1],
			Blue:        vals[2],
			Chlorophyll: pt.Chlorophyll,
			PlantHealth: pt.PlantHealth,
		})
	}
	return
}
