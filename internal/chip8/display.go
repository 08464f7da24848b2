package chip8

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
	DisplaySize   = DisplayWidth * DisplayHeight
)

// Frame is a row-major 64x32 monochrome pixel grid.
type Frame [DisplaySize]bool

// Pixel returns whether the pixel at the given coordinates is set.
// Each coordinate wraps around its own axis.
func (f *Frame) Pixel(x, y int) bool {
	x %= DisplayWidth
	if x < 0 {
		x += DisplayWidth
	}
	y %= DisplayHeight
	if y < 0 {
		y += DisplayHeight
	}
	return f[y*DisplayWidth+x]
}

// Display is the display buffer that instructions draw to.
type Display struct {
	cells Frame
}

// Clear resets all pixels.
func (d *Display) Clear() {
	d.cells = Frame{}
}

// Toggle flips the pixel at the given index and returns whether it was set
// before. The index wraps around the whole buffer.
func (d *Display) Toggle(index int) bool {
	index %= DisplaySize
	if index < 0 {
		index += DisplaySize
	}
	wasSet := d.cells[index]
	d.cells[index] = !wasSet
	return wasSet
}

// Snapshot returns a copy of the pixel grid.
func (d *Display) Snapshot() Frame {
	return d.cells
}

// pixelIndex returns the buffer index of a drawn pixel. Drawing wraps across
// the whole buffer, a pixel past the right edge lands on the next row.
func pixelIndex(x, y int) int {
	index := (y*DisplayWidth + x) % DisplaySize
	if index < 0 {
		index += DisplaySize
	}
	return index
}
