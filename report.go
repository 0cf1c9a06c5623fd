package groundpix

import (
	"fmt"

	"github.com/croplab/groundpix/log"

	"go.uber.org/zap"
)

// 打印汇总统计，各计数取自提取与清洗阶段的真实计数
func ReportStats(valid int, skips SkipStats, dropped int) {
	total := valid + dropped + skips.Total()
	pct := 0.0
	if total > 0 {
		pct = float64(valid) / float64(total) * 100
	}
	log.Info("dataset summary",
		zap.Int("total", total),
		zap.Int("valid", valid),
		zap.Int("out_of_bounds", skips.OutOfBounds),
		zap.Int("pixel_out_of_range", skips.PixelOutOfRange),
		zap.Int("sample_read_failure", skips.SampleReadFailure),
		zap.Int("cleaned_out", dropped),
		zap.String("valid_pct", fmt.Sprintf("%.2f%%", pct)))
}
