package ui

// Base holds the size shared by popup components.
// Embed it in a component model to get the accessors.
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// ListHeight returns the rows left for list content after overhead rows,
// never less than one.
func (b Base) ListHeight(overhead int) int {
	return max(b.height-overhead, 1)
}
