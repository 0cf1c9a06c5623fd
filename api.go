package groundpix

// 地面实测点：经纬度坐标加标签字段
type GroundPoint struct {
	Longitude   float64
	Latitude    float64
	Chlorophyll string // 叶绿素测量值，原样透传
	PlantHealth string // 植株健康等级，空值视为缺失
}

// 采样记录：单个实测点与影像像元的关联结果
type Sample struct {
	Date        string
	PixelRow    int
	PixelCol    int
	Red         float64
	Green       float64
	Blue        float64
	Chlorophyll string
	PlantHealth string
}

// 跳过原因
type SkipReason int

const (
	SkipOutOfBounds SkipReason = iota // 投影坐标超出影像世界范围
	SkipPixelOutOfRange               // 像素坐标超出影像尺寸
	SkipSampleReadFailure             // 波段取值失败
)

func (r SkipReason) String() string {
	switch r {
	case SkipOutOfBounds:
		return "OutOfBounds"
	case SkipPixelOutOfRange:
		return "PixelOutOfRange"
	case SkipSampleReadFailure:
		return "SampleReadFailure"
	}
	return "Unknown"
}

// 各类跳过计数
type SkipStats struct {
	OutOfBounds       int
	PixelOutOfRange   int
	SampleReadFailure int
}

func (s SkipStats) Add(o SkipStats) SkipStats {
	s.OutOfBounds += o.OutOfBounds
	s.PixelOutOfRange += o.PixelOutOfRange
	s.SampleReadFailure += o.SampleReadFailure
	return s
}

func (s SkipStats) Total() int {
	return s.OutOfBounds + s.PixelOutOfRange + s.SampleReadFailure
}

// 提取结果：按输入行序排列的采样记录与跳过计数
type Extraction struct {
	Samples []Sample
	Skips   SkipStats
}

func (e *Extraction) Merge(o Extraction) {
	e.Samples = append(e.Samples, o.Samples...)
	e.Skips = e.Skips.Add(o.Skips)
}
