// Package core provides fundamental types and utilities for the splash
// platform: cell-space geometry, the screen buffer, and the pixel grid the
// simulation runs on. It contains no external dependencies (especially no
// Bubble Tea) so everything here is testable without a terminal.
package core

// The simulation runs in continuous pixel space; the terminal renders cells.
// One cell covers a fixed pixel patch, tall rather than square because
// terminal cells are. All pixel<->cell conversion goes through these.
const (
	CellPxW = 10.0 // Pixel width of one terminal cell
	CellPxH = 20.0 // Pixel height of one terminal cell
)

// CellToPxX converts a cell column to the pixel x of its left edge.
func CellToPxX(col int) float64 {
	return float64(col) * CellPxW
}

// CellToPxY converts a cell row to the pixel y of its top edge.
func CellToPxY(row int) float64 {
	return float64(row) * CellPxH
}

// PxToCellX converts a pixel x to a cell column (truncated).
func PxToCellX(x float64) int {
	return int(x / CellPxW)
}

// PxToCellY converts a pixel y to a cell row (truncated).
func PxToCellY(y float64) int {
	return int(y / CellPxH)
}

// Rect represents an axis-aligned box in cell coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersects returns true if the two rectangles share at least one cell.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
