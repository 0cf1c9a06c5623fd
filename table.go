package groundpix

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/croplab/groundpix/log"
	"github.com/croplab/groundpix/utils"

	"go.uber.org/zap"
)

// 读取地面实测表，表头字段名容忍两端空白
func (g *Toolbox) LoadGroundTruth(path string) (pts []GroundPoint, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Error(g.logTag+"open gt csv failed", zap.String("csv", path), zap.Error(err))
		return
	}
	if !utf8.Valid(raw) {
		if fixed, e := utils.GbkToUtf8(raw); e == nil {
			raw = fixed
		}
	}
	rd := csv.NewReader(bytes.NewReader(raw))
	rd.FieldsPerRecord = -1
	rd.TrimLeadingSpace = true
	records, err := rd.ReadAll()
	if err != nil {
		log.Error(g.logTag+"parse gt csv failed", zap.String("csv", path), zap.Error(err))
		return
	}
	if len(records) == 0 {
		err = ErrEmptyTable
		return
	}
	colIdx := map[string]int{}
	for i, name := range records[0] {
		colIdx[strings.TrimSpace(name)] = i
	}
	required := [4]string{COL_LONGITUDE, COL_LATITUDE, COL_CHLOROPHYLL, COL_PLANT_HEALTH}
	var cols [4]int
	for i, name := range required {
		idx, ok := colIdx[name]
		if !ok {
			err = fmt.Errorf(ErrColumnMissingTemplate, name)
			return
		}
		cols[i] = idx
	}
	pts = make([]GroundPoint, 0, len(records)-1)
	bad := 0
	for i, rec := range records[1:] {
		if len(rec) <= cols[0] || len(rec) <= cols[1] || len(rec) <= cols[2] || len(rec) <= cols[3] {
			bad++
			log.Warn(g.logTag+"short gt row", zap.String("csv", path), zap.Int("row", i+1))
			continue
		}
		lon, e1 := strconv.ParseFloat(strings.TrimSpace(rec[cols[0]]), 64)
		lat, e2 := strconv.ParseFloat(strings.TrimSpace(rec[cols[1]]), 64)
		if e1 != nil || e2 != nil {
			bad++
			log.Warn(g.logTag+"bad gt coordinate", zap.String("csv", path), zap.Int("row", i+1),
				zap.String("lon", rec[cols[0]]), zap.String("lat", rec[cols[1]]))
			continue
		}
		pts = append(pts, GroundPoint{
			Longitude:   lon,
			Latitude:    lat,
			Chlorophyll: strings.TrimSpace(rec[cols[2]]),
			PlantHealth: strings.TrimSpace(rec[cols[3]]),
		})
	}
	log.Info(g.logTag+"gt csv loaded", zap.String("csv", path),
		zap.Int("points", len(pts)), zap.Int("bad_rows", bad))
	return
}
