package holo

// Color is a linear RGBA color. Components are expected in [0,1].
type Color [4]float32

var (
	White   = Color{1, 1, 1, 1}
	Red     = Color{1, 0, 0, 1}
	Green   = Color{0, 1, 0, 1}
	Blue    = Color{0, 0, 1, 1}
	Yellow  = Color{1, 0.92, 0.016, 1}
	Cyan    = Color{0, 1, 1, 1}
	Magenta = Color{1, 0, 1, 1}
)

// RGB builds an opaque color.
func RGB(r, g, b float32) Color {
	return Color{r, g, b, 1}
}

func (c Color) R() float32 { return c[0] }
func (c Color) G() float32 { return c[1] }
func (c Color) B() float32 { return c[2] }
func (c Color) A() float32 { return c[3] }

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	return Color{c[0], c[1], c[2], a}
}

// Opaque is c with alpha 1, used for the wireframe pass.
func (c Color) Opaque() Color {
	return c.WithAlpha(1)
}
