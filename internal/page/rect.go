package page

// Rect is an axis-aligned box in document coordinates (pixels from the
// top-left corner of the page, ignoring scroll).
type Rect struct {
	X, Y, Width, Height float64
}

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains reports whether (x, y) lies inside the rectangle, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// MirrorX reflects the rectangle horizontally inside a container of the given
// width. Used by reflow hooks when the writing direction flips.
func (r Rect) MirrorX(containerWidth float64) Rect {
	r.X = containerWidth - r.X - r.Width
	return r
}
