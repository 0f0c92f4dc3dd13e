package scaler

import (
	"math"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/xaionaro-go/clipfunc/types"
)

// Params are the kernel parameters. B and C are used by "bicubic"
// (default: B=0, C=0.5, i.e. Catmull-Rom), Taps by "lanczos" (default: 3).
type Params struct {
	B    *float64
	C    *float64
	Taps *int
}

const (
	KernelPoint    = "point"
	KernelBilinear = "bilinear"
	KernelBicubic  = "bicubic"
	KernelLanczos  = "lanczos"
	KernelSpline16 = "spline16"
	KernelSpline36 = "spline36"
	KernelSpline64 = "spline64"
)

// GetFilter returns the resample filter for the kernel name
// (case-insensitive).
func GetFilter(kernel string, params Params) (transform.ResampleFilter, error) {
	switch strings.ToLower(kernel) {
	case KernelPoint:
		return transform.NearestNeighbor, nil
	case KernelBilinear:
		return transform.Linear, nil
	case KernelBicubic:
		b, c := 0.0, 0.5
		if params.B != nil {
			b = *params.B
		}
		if params.C != nil {
			c = *params.C
		}
		return Bicubic(b, c), nil
	case KernelLanczos:
		taps := 3
		if params.Taps != nil {
			taps = *params.Taps
		}
		if taps < 1 {
			return transform.ResampleFilter{}, types.ErrInvalidConfig{
				Func:   "get_scale_filter",
				Reason: "lanczos requires at least 1 tap",
			}
		}
		return Lanczos(taps), nil
	case KernelSpline16:
		return Spline16, nil
	case KernelSpline36:
		return Spline36, nil
	case KernelSpline64:
		return Spline64, nil
	}
	return transform.ResampleFilter{}, types.ErrInvalidConfig{
		Func:   "get_scale_filter",
		Reason: "unknown kernel '" + kernel + "'",
	}
}

// Bicubic is the Mitchell-Netravali family of cubic filters.
func Bicubic(b, c float64) transform.ResampleFilter {
	return transform.ResampleFilter{
		Support: 2,
		Fn: func(x float64) float64 {
			x = math.Abs(x)
			switch {
			case x < 1:
				return ((12-9*b-6*c)*x*x*x + (-18+12*b+6*c)*x*x + (6 - 2*b)) / 6
			case x < 2:
				return ((-b-6*c)*x*x*x + (6*b+30*c)*x*x + (-12*b-48*c)*x + (8*b + 24*c)) / 6
			}
			return 0
		},
	}
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	x *= math.Pi
	return math.Sin(x) / x
}

func Lanczos(taps int) transform.ResampleFilter {
	support := float64(taps)
	return transform.ResampleFilter{
		Support: support,
		Fn: func(x float64) float64 {
			x = math.Abs(x)
			if x >= support {
				return 0
			}
			return sinc(x) * sinc(x/support)
		},
	}
}

var Spline16 = transform.ResampleFilter{
	Support: 2,
	Fn: func(x float64) float64 {
		x = math.Abs(x)
		switch {
		case x < 1:
			return ((x-9.0/5.0)*x-1.0/5.0)*x + 1
		case x < 2:
			x--
			return ((-1.0/3.0*x+4.0/5.0)*x - 7.0/15.0) * x
		}
		return 0
	},
}

var Spline36 = transform.ResampleFilter{
	Support: 3,
	Fn: func(x float64) float64 {
		x = math.Abs(x)
		switch {
		case x < 1:
			return ((13.0/11.0*x-453.0/209.0)*x-3.0/209.0)*x + 1
		case x < 2:
			x--
			return ((-6.0/11.0*x+270.0/209.0)*x - 156.0/209.0) * x
		case x < 3:
			x -= 2
			return ((1.0/11.0*x-45.0/209.0)*x + 26.0/209.0) * x
		}
		return 0
	},
}

var Spline64 = transform.ResampleFilter{
	Support: 4,
	Fn: func(x float64) float64 {
		x = math.Abs(x)
		switch {
		case x < 1:
			return ((49.0/41.0*x-6387.0/2911.0)*x-3.0/2911.0)*x + 1
		case x < 2:
			x--
			return ((-24.0/41.0*x+4032.0/2911.0)*x - 2328.0/2911.0) * x
		case x < 3:
			x -= 2
			return ((6.0/41.0*x-1008.0/2911.0)*x + 582.0/2911.0) * x
		case x < 4:
			x -= 3
			return ((-1.0/41.0*x+168.0/2911.0)*x - 97.0/2911.0) * x
		}
		return 0
	},
}
