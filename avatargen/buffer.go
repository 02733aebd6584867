package avatargen

// BufferSize is the avatar grid's width and height. Everything downstream
// (the coordinate tables in draw.go, the encoders' scaling math) assumes 16.
const BufferSize = 16

// Transparent is the "nothing drawn here" cell value. Real cells hold an
// index into the active palette's flat color list.
const Transparent = -1

// A Buffer is the little indexed-color canvas an avatar gets painted on.
// All the primitives silently skip out-of-bounds coordinates instead of
// panicking, so drawing code can be sloppy about shapes spilling off the
// edge of the grid.
type Buffer struct {
	cells [BufferSize * BufferSize]int
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.Clear()
	return b
}

// Clear resets every cell to Transparent.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Transparent
	}
}

func inBounds(x, y int) bool {
	return x >= 0 && x < BufferSize && y >= 0 && y < BufferSize
}

// SetPixel writes color at (x, y). Out of bounds is a no-op.
func (b *Buffer) SetPixel(x, y, color int) {
	if !inBounds(x, y) {
		return
	}
	b.cells[y*BufferSize+x] = color
}

// Pixel reads the cell at (x, y). Out of bounds reads as Transparent.
func (b *Buffer) Pixel(x, y int) int {
	if !inBounds(x, y) {
		return Transparent
	}
	return b.cells[y*BufferSize+x]
}

// FillRect sets every cell in the w×h rectangle anchored at (x, y). The
// rectangle may hang off the grid; those cells are skipped.
func (b *Buffer) FillRect(x, y, w, h, color int) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			b.SetPixel(xx, yy, color)
		}
	}
}

// DrawLine draws a Bresenham line from (x0, y0) to (x1, y1), inclusive of
// both endpoints.
func (b *Buffer) DrawLine(x0, y0, x1, y1, color int) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	dy = -dy
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		b.SetPixel(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FillCircle fills the disk of radius r centered at (cx, cy): every cell with
// (x-cx)² + (y-cy)² ≤ r².
func (b *Buffer) FillCircle(cx, cy, r, color int) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx := x - cx
			dy := y - cy
			if dx*dx+dy*dy <= r*r {
				b.SetPixel(x, y, color)
			}
		}
	}
}

// MirrorVertically overwrites the right half of every row with the reflection
// of the left half. Whatever was on the right is discarded.
func (b *Buffer) MirrorVertically() {
	for y := 0; y < BufferSize; y++ {
		row := b.cells[y*BufferSize : (y+1)*BufferSize]
		for x := 0; x < BufferSize/2; x++ {
			row[BufferSize-1-x] = row[x]
		}
	}
}

// Data returns a row-major snapshot of the grid. It's a copy, so callers
// can't reach back into the buffer through it.
func (b *Buffer) Data() []int {
	data := make([]int, len(b.cells))
	copy(data, b.cells[:])
	return data
}
