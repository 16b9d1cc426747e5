package carousel

// Fan layout coefficients. They are fixed for visual parity across renderers.
const (
	SpreadX   = 260.0
	ArchY     = 35.0
	ScaleStep = 0.1
	TiltDeg   = 8.0
	BaseZ     = 20
	FadeStep  = 0.2
	BlurStep  = 4.0
)

// Transform is the placement of one window slot relative to the centre.
type Transform struct {
	X        float64
	Y        float64
	Scale    float64
	Rotation float64
	ZIndex   int
	Opacity  float64
	Blur     float64
}

// TransformFor maps a window offset to its placement. It depends on the
// offset only, never on index or content.
func TransformFor(offset int) Transform {
	abs := offset
	if abs < 0 {
		abs = -abs
	}
	a := float64(abs)
	return Transform{
		X:        float64(offset) * SpreadX,
		Y:        a * ArchY,
		Scale:    1 - a*ScaleStep,
		Rotation: float64(offset) * TiltDeg,
		ZIndex:   BaseZ - abs,
		Opacity:  1 - a*FadeStep,
		Blur:     a * BlurStep,
	}
}
