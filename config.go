package groundpix

const (
	FILE_EXT_TIF = ".tif"
	FILE_EXT_CSV = ".csv"
	FILE_EXT_PNG = ".png"

	WGS84_SRID = 4326

	MIN_RASTER_BANDS = 3
	CHANNEL_MAX      = 255.0

	IDENTITY_ZOOM = 1.0

	COL_LONGITUDE    = "Longitude"
	COL_LATITUDE     = "Latitude"
	COL_CHLOROPHYLL  = "Chlorophyll"
	COL_PLANT_HEALTH = "Plant health"

	ErrColumnMissingTemplate = `ground truth csv missing column [%s]`

	TMP_OUT_PATTERN = "train_%s.tmp"
	OVERLAY_PATTERN = "%s_valid_points" + FILE_EXT_PNG
)

// 输出CSV表头
var outputHeader = []string{
	"Date", "Pixel Row", "Pixel Col", "Red", "Green", "Blue", "Chlorophyll", "Plant Health",
}
