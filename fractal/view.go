package fractal

// Rect is the region of the complex plane mapped onto a buffer.
type Rect struct {
	XMin, YMin, XMax, YMax float64
}

var DefaultRect = Rect{XMin: -1.5, YMin: -1.5, XMax: 1.5, YMax: 1.5}

// At maps pixel (x, y) of a width×height buffer into r.
func (r Rect) At(x, y, width, height int) complex128 {
	return complex(
		r.XMin+float64(x)*(r.XMax-r.XMin)/float64(width),
		r.YMin+float64(y)*(r.YMax-r.YMin)/float64(height),
	)
}

// View is a camera centered on (CenterX, CenterY). Larger scales zoom in.
type View struct {
	CenterX, CenterY float64
	Scale            float64
}

func (v View) Rect(width, height int) Rect {
	hw, hh := float64(width)/v.Scale, float64(height)/v.Scale
	return Rect{
		XMin: v.CenterX - hw,
		YMin: v.CenterY - hh,
		XMax: v.CenterX + hw,
		YMax: v.CenterY + hh,
	}
}
