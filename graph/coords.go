package graph

// DerivedNodeGap is the logical horizontal gap between a source node and a
// node spawned to its right.
const DerivedNodeGap = 100

// zoom returns the viewport's scale factor, treating zero as identity.
func (v Viewport) zoom() float64 {
	if v.Zoom == 0 {
		return 1
	}
	return v.Zoom
}

// ScreenToLogical maps a screen-space point to logical graph coordinates
// under the given pan/zoom.
func ScreenToLogical(p Position, v Viewport) Position {
	z := v.zoom()
	return Position{
		X: (p.X - v.X) / z,
		Y: (p.Y - v.Y) / z,
	}
}

// LogicalToScreen maps a logical point back to screen space. It is the
// inverse of ScreenToLogical for any viewport.
func LogicalToScreen(p Position, v Viewport) Position {
	z := v.zoom()
	return Position{
		X: p.X*z + v.X,
		Y: p.Y*z + v.Y,
	}
}

// LogicalCenter returns the logical point at the center of a screen of the
// given size. Paste places new nodes here.
func (v Viewport) LogicalCenter(screenWidth, screenHeight float64) Position {
	return ScreenToLogical(Position{X: screenWidth / 2, Y: screenHeight / 2}, v)
}

// DerivedNodePosition returns where a node derived from source should spawn:
// at a fixed logical gap to the right, accounting for the source's measured
// width.
func DerivedNodePosition(source Node) Position {
	width := source.Width
	if width == 0 {
		width = 300
	}
	return Position{
		X: source.Position.X + width + DerivedNodeGap,
		Y: source.Position.Y,
	}
}
