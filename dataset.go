package groundpix

import (
	"path/filepath"

	"github.com/schollz/progressbar/v3"
)

// 流水线配置，所有路径与日期均由调用方显式给定
type Config struct {
	RasterDir    string
	TableDir     string
	Dates        []string
	Zoom         float64 // 0值视为1.0
	OutputPath   string
	OverlayDir   string
	OverlayDates []string
}

func RasterPath(dir, date string) string {
	return filepath.Join(dir, date+FILE_EXT_TIF)
}

func TablePath(dir, date string) string {
	return filepath.Join(dir, date+FILE_EXT_CSV)
}

// 按日期顺序提取并拼接所有采样结果，任一日期的打开类错误即终止
func (g *Toolbox) CreateTrainingDataset(cfg Config) (ext Extraction, err error) {
	zoom := cfg.Zoom
	if zoom == 0 {
		zoom = IDENTITY_ZOOM
	}
	bar := progressbar.Default(int64(len(cfg.Dates)), "extracting dates")
	defer bar.Finish()
	for _, date := range cfg.Dates {
		var one Extraction
		one, err = g.ExtractDate(RasterPath(cfg.RasterDir, date), TablePath(cfg.TableDir, date), date, zoom)
		if err != nil {
			return
		}
		ext.Merge(one)
		bar.Add(1)
	}
	return
}
