package groundpix

import "errors"

var (
	ErrInvalidTif    = errors.New("gdal tif open err")
	ErrWrongTif      = errors.New("tif bands not enough")
	ErrTifReadFailed = errors.New("tif band read err")
	ErrVoidSrid      = errors.New("raster with void srid")
	ErrBadTransform  = errors.New("geo transform not invertible")
	ErrEmptyTable    = errors.New("ground truth table is empty")
)
