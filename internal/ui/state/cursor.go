package state

// Cursor tracks the highlighted row within the visible page.
type Cursor struct {
	Row int
}

// Clamp keeps the cursor inside a page of n rows.
func (c *Cursor) Clamp(n int) {
	if n <= 0 || c.Row < 0 {
		c.Row = 0
		return
	}
	if c.Row >= n {
		c.Row = n - 1
	}
}

// Home moves the cursor to the first row.
func (c *Cursor) Home(n int) bool {
	return c.set(0, n)
}

// End moves the cursor to the last row.
func (c *Cursor) End(n int) bool {
	return c.set(n-1, n)
}

// Up moves the cursor up one row.
func (c *Cursor) Up(n int) bool {
	return c.set(c.Row-1, n)
}

// Down moves the cursor down one row.
func (c *Cursor) Down(n int) bool {
	return c.set(c.Row+1, n)
}

// AtTop reports whether the cursor is on the first row.
func (c *Cursor) AtTop() bool {
	return c.Row <= 0
}

// AtBottom reports whether the cursor is on the last of n rows.
func (c *Cursor) AtBottom(n int) bool {
	return c.Row >= n-1
}

func (c *Cursor) set(row, n int) bool {
	old := c.Row
	c.Row = row
	c.Clamp(n)
	return c.Row != old
}
