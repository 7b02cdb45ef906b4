package shapes

// Shape is implemented by every drawable primitive that can be placed in a
// drawing or group.
type Shape interface {
	// Bounds returns the axis-aligned bounding box as (x1, y1, x2, y2).
	Bounds() (x1, y1, x2, y2 float64)
}

// UserNode is implemented by user-defined objects that expand into a Shape at
// render time instead of being drawable themselves.
type UserNode interface {
	// ProvideNode returns the shape the node expands to.
	ProvideNode() (Shape, error)
}
