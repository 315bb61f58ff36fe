package core

import "fmt"

// Unit is a display unit a dimension magnitude is expressed in.
type Unit int

const (
	// UnitPx is a raw pixel count, unaffected by display metrics.
	UnitPx Unit = iota
	// UnitDp is a density-independent pixel.
	UnitDp
	// UnitSp is a scale-independent pixel, tracking the user font scale.
	UnitSp
	// UnitPt is a typographic point, 1/72 inch.
	UnitPt
	// UnitIn is a physical inch.
	UnitIn
	// UnitMm is a physical millimeter.
	UnitMm
)

var unitNames = map[Unit]string{
	UnitPx: "px",
	UnitDp: "dp",
	UnitSp: "sp",
	UnitPt: "pt",
	UnitIn: "in",
	UnitMm: "mm",
}

func (u Unit) String() string {
	if s, ok := unitNames[u]; ok {
		return s
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// ParseUnit maps a unit suffix ("dp", "sp", ...) to its Unit. The second
// result is false for unknown suffixes.
func ParseUnit(s string) (Unit, bool) {
	for u, name := range unitNames {
		if name == s {
			return u, true
		}
	}
	return 0, false
}

// Dimension is a magnitude qualified by a display unit, e.g. 16dp. It stays
// symbolic until value resolution converts it to integer pixels for the
// current display.
type Dimension struct {
	Value float64
	Unit  Unit
}

// Dp, Sp and Px build the common dimension literals.
func Dp(v float64) Dimension { return Dimension{Value: v, Unit: UnitDp} }
func Sp(v float64) Dimension { return Dimension{Value: v, Unit: UnitSp} }
func Px(v float64) Dimension { return Dimension{Value: v, Unit: UnitPx} }

func (d Dimension) String() string {
	return fmt.Sprintf("%g%s", d.Value, d.Unit)
}

// DisplayMetrics describes the display a build targets. Density is the
// dp-to-px factor, ScaledDensity additionally folds in the user font scale,
// and XDPI/YDPI are the physical dots-per-inch of the panel.
type DisplayMetrics struct {
	Density       float64
	ScaledDensity float64
	XDPI          float64
	YDPI          float64
}

// DefaultMetrics is a neutral 1:1 display: density factors of 1 and a 160dpi
// panel, under which 1dp == 1px.
var DefaultMetrics = DisplayMetrics{Density: 1, ScaledDensity: 1, XDPI: 160, YDPI: 160}

// MetricsProvider yields the display metrics for the build target. Fetching
// metrics from a real host window can be expensive, so resolvers memoize the
// result per provider.
type MetricsProvider interface {
	DisplayMetrics() DisplayMetrics
}

// StaticMetrics is a MetricsProvider returning fixed metrics, for tests and
// headless toolkits.
type StaticMetrics DisplayMetrics

// DisplayMetrics returns the fixed metrics.
func (m StaticMetrics) DisplayMetrics() DisplayMetrics {
	return DisplayMetrics(m)
}
