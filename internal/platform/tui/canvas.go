package tui

// Canvas is a cell buffer that projects arena coordinates onto terminal
// cells. X and Y scale independently, which also absorbs the 2:1 aspect
// ratio of terminal cells.
type Canvas struct {
	cols, rows     int
	arenaW, arenaH float64
	cells          []cell
}

type cell struct {
	r     rune
	color string // outline color name, "" = default
}

// NewCanvas creates a canvas mapping an arenaW x arenaH world onto
// cols x rows cells.
func NewCanvas(cols, rows int, arenaW, arenaH float64) *Canvas {
	c := &Canvas{
		cols:   cols,
		rows:   rows,
		arenaW: arenaW,
		arenaH: arenaH,
		cells:  make([]cell, cols*rows),
	}
	c.Clear()
	return c
}

// Cols returns the canvas width in cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the canvas height in cells.
func (c *Canvas) Rows() int { return c.rows }

// Resize adjusts the cell grid, keeping the world mapping.
func (c *Canvas) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	c.cols, c.rows = cols, rows
	c.cells = make([]cell, cols*rows)
	c.Clear()
}

// Clear fills the canvas with blanks.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
}

// Set places a rune at the given cell, ignoring out-of-range cells.
func (c *Canvas) Set(col, row int, r rune, color string) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] = cell{r: r, color: color}
}

// cellAt returns the cell contents.
func (c *Canvas) cellAt(col, row int) cell {
	return c.cells[row*c.cols+col]
}

// worldToCell maps world coordinates to the containing cell.
func (c *Canvas) worldToCell(x, y float64) (col, row int) {
	col = int(x / c.arenaW * float64(c.cols))
	row = int(y / c.arenaH * float64(c.rows))
	return col, row
}

// cellCenter maps a cell back to the world position of its center.
func (c *Canvas) cellCenter(col, row int) (x, y float64) {
	x = (float64(col) + 0.5) * c.arenaW / float64(c.cols)
	y = (float64(row) + 0.5) * c.arenaH / float64(c.rows)
	return x, y
}

// DrawCircle fills the cells whose centers fall inside a world-space
// circle.
func (c *Canvas) DrawCircle(cx, cy, radius float64, r rune, color string) {
	minCol, minRow := c.worldToCell(cx-radius, cy-radius)
	maxCol, maxRow := c.worldToCell(cx+radius, cy+radius)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			x, y := c.cellCenter(col, row)
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius {
				c.Set(col, row, r, color)
			}
		}
	}
}

// DrawPoint places a single rune at a world position.
func (c *Canvas) DrawPoint(x, y float64, r rune, color string) {
	col, row := c.worldToCell(x, y)
	c.Set(col, row, r, color)
}

// DrawLabel writes text starting at a world position, clipped to the row.
func (c *Canvas) DrawLabel(x, y float64, text string, color string) {
	col, row := c.worldToCell(x, y)
	for i, r := range text {
		c.Set(col+i, row, r, color)
	}
}

// DrawBorder draws the arena boundary along the canvas edges.
func (c *Canvas) DrawBorder() {
	for col := 0; col < c.cols; col++ {
		c.Set(col, 0, '─', "")
		c.Set(col, c.rows-1, '─', "")
	}
	for row := 0; row < c.rows; row++ {
		c.Set(0, row, '│', "")
		c.Set(c.cols-1, row, '│', "")
	}
	c.Set(0, 0, '┌', "")
	c.Set(c.cols-1, 0, '┐', "")
	c.Set(0, c.rows-1, '└', "")
	c.Set(c.cols-1, c.rows-1, '┘', "")
}
