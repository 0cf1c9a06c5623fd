package main

import (
	"os"

	"github.com/croplab/groundpix"
	"github.com/croplab/groundpix/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfg   groundpix.Config
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "groundpix",
	Short: "Build a labeled pixel-sample training table from geo-referenced imagery and ground truth",
	Long: `groundpix joins per-date GeoTIFF imagery with per-date ground-truth tables:
ground points are reprojected into the raster CRS, mapped to pixels, sampled
on the first three channel bands and written out as one cleaned CSV dataset.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&cfg.RasterDir, "raster-dir", "", "directory of per-date <date>.tif rasters")
	flags.StringVar(&cfg.TableDir, "table-dir", "", "directory of per-date <date>.csv ground-truth tables")
	flags.StringSliceVar(&cfg.Dates, "dates", nil, "ordered date labels to process")
	flags.Float64Var(&cfg.Zoom, "zoom", groundpix.IDENTITY_ZOOM, "zoom factor applied to each raster transform")
	flags.StringVar(&cfg.OutputPath, "out", "training_data/cleaned_training_data.csv", "output CSV path")
	flags.StringVar(&cfg.OverlayDir, "overlay-dir", "overlays", "directory for valid-point overlay PNGs")
	flags.StringSliceVar(&cfg.OverlayDates, "overlay-dates", nil, "dates to render overlays for")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.MarkFlagRequired("raster-dir")
	rootCmd.MarkFlagRequired("table-dir")
	rootCmd.MarkFlagRequired("dates")
}

func run(cmd *cobra.Command, args []string) error {
	if debug {
		log.SetLevel(zapcore.DebugLevel)
	}
	defer log.Sync()
	g := groundpix.NewToolbox()
	ext, err := g.CreateTrainingDataset(cfg)
	if err != nil {
		return err
	}
	cleaned, dropped := groundpix.CleanDataset(ext.Samples)
	if err = groundpix.WriteDataset(cleaned, cfg.OutputPath); err != nil {
		return err
	}
	groundpix.ReportStats(len(cleaned), ext.Skips, dropped)
	for _, date := range cfg.OverlayDates {
		tif := groundpix.RasterPath(cfg.RasterDir, date)
		if _, err := g.RenderOverlay(tif, date, cleaned, cfg.OverlayDir); err != nil {
			log.Error("overlay render failed", zap.String("date", date), zap.Error(err))
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
