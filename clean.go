package groundpix

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/croplab/groundpix/log"
	"github.com/croplab/groundpix/utils"

	"go.uber.org/zap"
)

// 清洗数据集：剔除零值通道（无数据哨兵值）与缺失健康标签的记录，
// 并将三通道按8bit范围归一化到[0,1]
func CleanDataset(samples []Sample) (out []Sample, dropped int) {
	out = make([]Sample, 0, len(samples))
	for _, s := range samples {
		if s.Red == 0 || s.Green == 0 || s.Blue == 0 {
			dropped++
			continue
		}
		if s.PlantHealth == "" {
			dropped++
			continue
		}
		s.Red /= CHANNEL_MAX
		s.Green /= CHANNEL_MAX
		s.Blue /= CHANNEL_MAX
		out = append(out, s)
	}
	return
}

// 写出训练数据CSV，先写同目录临时文件再改名覆盖目标路径
func WriteDataset(samples []Sample, outPath string) (err error) {
	dir := filepath.Dir(outPath)
	if err = utils.EnsureDir(dir); err != nil {
		return
	}
	tmp := utils.GetUniqTmpPath(dir, TMP_OUT_PATTERN)
	f, err := os.Create(tmp)
	if err != nil {
		return
	}
	w := csv.NewWriter(f)
	w.Write(outputHeader)
	for _, s := range samples {
		w.Write([]string{
			s.Date,
			strconv.Itoa(s.PixelRow),
			strconv.Itoa(s.PixelCol),
			formatChannel(s.Red),
			formatChannel(s.Green),
			formatChannel(s.Blue),
			s.Chlorophyll,
			s.PlantHealth,
		})
	}
	w.Flush()
	if err = w.Error(); err == nil {
		err = f.Close()
	} else {
		f.Close()
	}
	if err != nil {
		os.Remove(tmp)
		return
	}
	if err = os.Rename(tmp, outPath); err != nil {
		os.Remove(tmp)
		return
	}
	log.Info("training data saved", zap.String("out", outPath), zap.Int("rows", len(samples)))
	return
}

func formatChannel(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
