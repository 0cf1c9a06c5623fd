package groundpix

import (
	"fmt"
	"math"

	"github.com/croplab/groundpix/log"

	"go.uber.org/zap"
)

// GDAL六参数仿射变换：
// X = gt[0] + col*gt[1] + row*gt[2]
// Y = gt[3] + col*gt[4] + row*gt[5]
type GeoTransform [6]float64

// 像素坐标转世界坐标
func (gt GeoTransform) Apply(col, row float64) (x, y float64) {
	x = gt[0] + col*gt[1] + row*gt[2]
	y = gt[3] + col*gt[4] + row*gt[5]
	return
}

// 求逆变换，逆变换的Apply将世界坐标映射回(col,row)
func (gt GeoTransform) Invert() (inv GeoTransform, err error) {
	det := gt[1]*gt[5] - gt[2]*gt[4]
	if det == 0 {
		err = ErrBadTransform
		return
	}
	inv[1] = gt[5] / det
	inv[2] = -gt[2] / det
	inv[4] = -gt[4] / det
	inv[5] = gt[1] / det
	inv[0] = -(inv[1]*gt[0] + inv[2]*gt[3])
	inv[3] = -(inv[4]*gt[0] + inv[5]*gt[3])
	return
}

// 按缩放系数调整仿射变换，系数为1时原样返回
func (gt GeoTransform) ScaleZoom(factor float64) GeoTransform {
	if factor == IDENTITY_ZOOM {
		return gt
	}
	scaled := gt
	scaled[1] *= factor
	scaled[2] *= factor
	scaled[4] *= factor
	scaled[5] *= factor
	log.Info("adjusted transform for zoom", zap.Float64("factor", factor),
		zap.String("before", gt.String()), zap.String("after", scaled.String()))
	return scaled
}

// 计算零起点窗口(width x height)在该变换下的世界坐标范围
func (gt GeoTransform) WindowBounds(width, height int) (b Bounds) {
	w, h := float64(width), float64(height)
	xs := [4]float64{}
	ys := [4]float64{}
	xs[0], ys[0] = gt.Apply(0, 0)
	xs[1], ys[1] = gt.Apply(w, 0)
	xs[2], ys[2] = gt.Apply(0, h)
	xs[3], ys[3] = gt.Apply(w, h)
	b.MinX, b.MaxX = xs[0], xs[0]
	b.MinY, b.MaxY = ys[0], ys[0]
	for i := 1; i < 4; i++ {
		b.MinX = math.Min(b.MinX, xs[i])
		b.MaxX = math.Max(b.MaxX, xs[i])
		b.MinY = math.Min(b.MinY, ys[i])
		b.MaxY = math.Max(b.MaxY, ys[i])
	}
	return
}

func (gt GeoTransform) String() string {
	return fmt.Sprintf("|%g, %g, %g|%g, %g, %g|", gt[1], gt[2], gt[0], gt[4], gt[5], gt[3])
}

// 世界坐标范围
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

func (b Bounds) ToWkt() string {
	return PointsToWkt(b.MinX, b.MaxX, b.MinY, b.MaxY)
}
