package corners

// Mask is a per-pixel allow/deny grid used to keep replenishment away
// from regions already covered by live tracks. It is built fresh for one
// frame and written by a single owner.
type Mask struct {
	allowed []bool
	rows    int
	cols    int
}

// AllowAll returns a mask with every pixel allowed.
func AllowAll(rows, cols int) *Mask {
	allowed := make([]bool, rows*cols)
	for i := range allowed {
		allowed[i] = true
	}
	return &Mask{allowed: allowed, rows: rows, cols: cols}
}

// Exclude denies a square of the given radius centered at (x, y),
// clamped to the mask bounds.
func (m *Mask) Exclude(x, y float32, radius int) {
	cx, cy := int(x), int(y)
	yFrom := max(cy-radius, 0)
	yTo := min(cy+radius, m.rows-1)
	xFrom := max(cx-radius, 0)
	xTo := min(cx+radius, m.cols-1)
	for row := yFrom; row <= yTo; row++ {
		for col := xFrom; col <= xTo; col++ {
			m.allowed[row*m.cols+col] = false
		}
	}
}

// Allowed reports whether the pixel under the point may receive a new
// corner. Points outside the mask bounds are denied.
func (m *Mask) Allowed(x, y float32) bool {
	cx, cy := int(x), int(y)
	if cx < 0 || cx >= m.cols || cy < 0 || cy >= m.rows {
		return false
	}
	return m.allowed[cy*m.cols+cx]
}
