package native

import (
	"github.com/go-weft/weft/pkg/core"
	weferr "github.com/go-weft/weft/pkg/errors"
)

const (
	pointsPerInch = 72
	mmPerInch     = 25.4
)

// PixelSize converts a unit-qualified magnitude to integer pixels under the
// given display metrics, rounding half away from zero. Pixel magnitudes pass
// through the rounding only.
func PixelSize(value float64, unit core.Unit, m core.DisplayMetrics) (int, error) {
	var px float64
	switch unit {
	case core.UnitPx:
		px = value
	case core.UnitDp:
		px = value * m.Density
	case core.UnitSp:
		px = value * m.ScaledDensity
	case core.UnitPt:
		px = value * m.XDPI / pointsPerInch
	case core.UnitIn:
		px = value * m.XDPI
	case core.UnitMm:
		px = value * m.XDPI / mmPerInch
	default:
		return 0, weferr.New("native.PixelSize", weferr.KindBadValue, "unknown display unit %v", unit)
	}
	if px < 0 {
		return int(px - 0.5), nil
	}
	return int(px + 0.5), nil
}
