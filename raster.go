package groundpix

import (
	"math"

	"github.com/croplab/groundpix/log"

	godal "github.com/airbusgeo/godal"
	"go.uber.org/zap"
)

// 单景影像帧：尺寸、仿射参数、世界范围与前三个波段的全幅像元值
type RasterFrame struct {
	Width      int
	Height     int
	Srid       int
	Projection string
	Transform  GeoTransform
	Bounds     Bounds
	inverse    GeoTransform
	channels   [MIN_RASTER_BANDS][]float64
}

// 读取影像：按缩放系数调整仿射参数，并缓存前三个波段的全幅数据
func (g *Toolbox) LoadRasterFrame(tif string, zoom float64) (frame *RasterFrame, err error) {
	sds, err := godal.Open(tif, godal.RasterOnly())
	if err != nil {
		log.Error(g.logTag+"open tif failed", zap.String("tif", tif), zap.Error(err))
		err = ErrInvalidTif
		return
	}
	defer sds.Close()
	tifBands := sds.Bands()
	if bc := len(tifBands); bc < MIN_RASTER_BANDS {
		log.Error(g.logTag+"tif bands not enough", zap.String("tif", tif), zap.Int("bands", bc))
		err = ErrWrongTif
		return
	}
	gt, err := sds.GeoTransform()
	if err != nil {
		log.Error(g.logTag+"tif has no geo transform", zap.String("tif", tif), zap.Error(err))
		err = ErrInvalidTif
		return
	}
	st := sds.Structure()
	frame = &RasterFrame{
		Width:      st.SizeX,
		Height:     st.SizeY,
		Projection: sds.Projection(),
		Transform:  GeoTransform(gt).ScaleZoom(zoom),
	}
	if frame.inverse, err = frame.Transform.Invert(); err != nil {
		log.Error(g.logTag+"tif transform not invertible", zap.String("tif", tif))
		return
	}
	frame.Bounds = frame.Transform.WindowBounds(frame.Width, frame.Height)
	if frame.Srid, err = g.getSrid(frame.Projection); err != nil {
		log.Warn(g.logTag+"unidentified raster srid", zap.String("tif", tif), zap.Error(err))
		err = nil
	}
	log.Info(g.logTag+"tif opened", zap.String("tif", tif),
		zap.Int("width", frame.Width), zap.Int("height", frame.Height),
		zap.Int("srid", frame.Srid), zap.String("bounds", frame.Bounds.ToWkt()))
	for i := 0; i < MIN_RASTER_BANDS; i++ {
		band := tifBands[i]
		bs := band.Structure()
		buf := make([]float64, bs.SizeX*bs.SizeY)
		if err = band.Read(0, 0, buf, bs.SizeX, bs.SizeY); err != nil {
			log.Error(g.logTag+"read tif band failed", zap.Int("band", i), zap.Error(err))
			err = ErrTifReadFailed
			return
		}
		frame.channels[i] = buf
	}
	return
}

// 世界坐标转像素坐标，四舍五入到最近整数
func (f *RasterFrame) PixelAt(x, y float64) (row, col int) {
	fc, fr := f.inverse.Apply(x, y)
	row = int(math.Round(fr))
	col = int(math.Round(fc))
	return
}

// 判断像素坐标是否落在影像尺寸内
func (f *RasterFrame) InRange(row, col int) bool {
	return row >= 0 && row < f.Height && col >= 0 && col < f.Width
}

// 取指定像素的三通道值
func (f *RasterFrame) SampleAt(row, col int) (vals [MIN_RASTER_BANDS]float64, ok bool) {
	idx := row*f.Width + col
	for i := range f.channels {
		if idx < 0 || idx >= len(f.channels[i]) {
			return
		}
		vals[i] = f.channels[i][idx]
	}
	ok = true
	return
}
