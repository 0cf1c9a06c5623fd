package groundpix

import (
	"strconv"
	"sync"

	"github.com/croplab/groundpix/log"

	godal "github.com/airbusgeo/godal"
	"github.com/lukeroth/gdal"
	"go.uber.org/zap"
)

// 像素采样工具箱
type Toolbox struct {
	refMap map[int]*godal.SpatialRef
	rLock  sync.Mutex
	logTag string
}

var registerDrivers sync.Once

// 初始化采样工具箱
func NewToolbox() *Toolbox {
	registerDrivers.Do(godal.RegisterAll)
	return &Toolbox{
		refMap: map[int]*godal.SpatialRef{},
		logTag: "Toolbox:",
	}
}

// 获取srid对应的坐标系（可复用，故无需回收）
func (g *Toolbox) getSridRef(srid int) (ref *godal.SpatialRef, err error) {
	g.rLock.Lock()
	defer g.rLock.Unlock()
	ref, ok := g.refMap[srid]
	if ok {
		return
	}
	if ref, err = godal.NewSpatialRefFromEPSG(srid); err != nil {
		log.Error(g.logTag+"set ref srid failed", zap.Int("srid", srid), zap.Error(err))
		return
	}
	g.refMap[srid] = ref
	return
}

// 从投影WKT中识别srid，仅用于诊断输出，识别失败不影响后续投影
func (g *Toolbox) getSrid(wkt string) (srid int, err error) {
	if wkt == "" {
		err = ErrVoidSrid
		return
	}
	sp := gdal.CreateSpatialReference(wkt)
	defer sp.Destroy()
	rawId, ok := sp.AttrValue("AUTHORITY", 1)
	if !ok {
		err = ErrVoidSrid
		return
	}
	srid, err = strconv.Atoi(rawId)
	log.Info(g.logTag+"got srid from projection", zap.String("id", rawId))
	return
}

// 点投影：经纬度(WGS84)转影像坐标系
type PointProjector struct {
	trans *godal.Transform
	dst   *godal.SpatialRef
}

// 以影像自身坐标系为目标构建点投影
func (g *Toolbox) NewPointProjector(frame *RasterFrame) (p *PointProjector, err error) {
	src, err := g.getSridRef(WGS84_SRID)
	if err != nil {
		return
	}
	dst, err := godal.NewSpatialRefFromWKT(frame.Projection)
	if err != nil {
		log.Error(g.logTag+"parse raster projection failed", zap.Error(err))
		return
	}
	trans, err := godal.NewTransform(src, dst)
	if err != nil {
		log.Error(g.logTag+"create point transform failed", zap.Error(err))
		dst.Close()
		return
	}
	p = &PointProjector{trans: trans, dst: dst}
	return
}

// 整表投影，坐标按(经度,纬度)次序原地转换，ok标记各点是否转换成功
func (p *PointProjector) ProjectAll(xs, ys []float64, ok []bool) error {
	return p.trans.TransformEx(xs, ys, nil, ok)
}

func (p *PointProjector) Close() {
	p.trans.Close()
	p.dst.Close()
}
