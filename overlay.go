package groundpix

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/croplab/groundpix/log"
	"github.com/croplab/groundpix/utils"

	"go.uber.org/zap"
)

var markColor = color.RGBA{R: 255, A: 255}

// 生成有效点叠加图：第一波段灰度底图加该日期保留点的红色标记，输出PNG
func (g *Toolbox) RenderOverlay(tif, date string, samples []Sample, outDir string) (out string, err error) {
	frame, err := g.LoadRasterFrame(tif, IDENTITY_ZOOM)
	if err != nil {
		return
	}
	img := frame.GrayImage()
	marked := 0
	for _, s := range samples {
		if s.Date != date {
			continue
		}
		markSample(img, s.PixelCol, s.PixelRow)
		marked++
	}
	if err = utils.EnsureDir(outDir); err != nil {
		return
	}
	out = filepath.Join(outDir, fmt.Sprintf(OVERLAY_PATTERN, date))
	f, err := os.Create(out)
	if err != nil {
		return
	}
	if err = png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(out)
		return
	}
	err = f.Close()
	log.Info(g.logTag+"overlay rendered", zap.String("date", date),
		zap.Int("points", marked), zap.String("png", out))
	return
}

// 第一波段渲染为8bit灰度图
func (f *RasterFrame) GrayImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for r := 0; r < f.Height; r++ {
		for c := 0; c < f.Width; c++ {
			v := clamp8(f.channels[0][r*f.Width+c])
			img.SetRGBA(c, r, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// 保留点画成3x3红色方块，超出图幅的部分忽略
func markSample(img *image.RGBA, col, row int) {
	b := img.Bounds()
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if p := image.Pt(col+dx, row+dy); p.In(b) {
				img.SetRGBA(p.X, p.Y, markColor)
			}
		}
	}
}

func clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
