package dtw

// Method selects the alignment policy: which cells of the alignment matrix
// are searchable, and at what cost. The set of methods is closed — exactly
// the five variants below implement it — and each variant carries its own
// typed options, validated when the region is built.
type Method interface {
	// region computes the method's constraint region for the given inputs;
	// nil means the full matrix is searched.
	region(x, y []float64, d Distance) (*Region, error)
}

// Classic is exact, unconstrained DTW over the full n×n matrix.
type Classic struct{}

func (Classic) region(_, _ []float64, _ Distance) (*Region, error) {
	return nil, nil
}

// SakoeChiba constrains the search to a fixed-width diagonal corridor.
type SakoeChiba struct {
	// Window is the band half-width: Cells(w) or Fraction(f).
	Window Window
}

func (m SakoeChiba) region(x, _ []float64, _ Distance) (*Region, error) {
	return SakoeChibaBand(len(x), m.Window)
}

// Itakura constrains the search to a slope-bounded parallelogram.
type Itakura struct {
	// MaxSlope is the maximum local slope, ≥ 1 (minimum slope is its
	// reciprocal).
	MaxSlope float64
}

func (m Itakura) region(x, _ []float64, _ Distance) (*Region, error) {
	return ItakuraParallelogram(len(x), m.MaxSlope)
}

// Multiscale derives the corridor once from a coarse-resolution optimal
// path, dilated by Radius cells in every direction.
type Multiscale struct {
	// Resolution is the reduction factor, ≥ 1 (1 means unconstrained).
	Resolution int

	// Radius is the corridor dilation radius, ≥ 0, applied at the coarse
	// resolution.
	Radius int
}

func (m Multiscale) region(x, y []float64, d Distance) (*Region, error) {
	if m.Resolution < 1 {
		return nil, ErrBadResolution
	}
	if m.Radius < 0 {
		return nil, ErrBadRadius
	}

	return multiscaleRegionFor(x, y, d.orDefault(), m.Resolution, m.Radius)
}

// Fast re-derives the corridor through a recursive resolution pyramid,
// giving near-linear total work for small radii (FastDTW).
type Fast struct {
	// Radius is the corridor dilation radius, ≥ 0, applied at every level.
	Radius int
}

func (m Fast) region(x, y []float64, d Distance) (*Region, error) {
	if m.Radius < 0 {
		return nil, ErrBadRadius
	}

	return fastRegionFor(x, y, d.orDefault(), m.Radius)
}

// MethodByName maps the conventional method names to variants configured
// with the reference defaults:
//
//	"classic"    → Classic{}
//	"sakoechiba" → SakoeChiba{Window: Fraction(DefaultWindowFraction)}
//	"itakura"    → Itakura{MaxSlope: DefaultMaxSlope}
//	"multiscale" → Multiscale{Resolution: DefaultResolution, Radius: DefaultRadius}
//	"fast"       → Fast{Radius: DefaultRadius}
//
// Errors: ErrUnknownMethod for any other name.
func MethodByName(name string) (Method, error) {
	switch name {
	case "classic":
		return Classic{}, nil
	case "sakoechiba":
		return SakoeChiba{Window: Fraction(DefaultWindowFraction)}, nil
	case "itakura":
		return Itakura{MaxSlope: DefaultMaxSlope}, nil
	case "multiscale":
		return Multiscale{Resolution: DefaultResolution, Radius: DefaultRadius}, nil
	case "fast":
		return Fast{Radius: DefaultRadius}, nil
	default:
		return nil, ErrUnknownMethod
	}
}
