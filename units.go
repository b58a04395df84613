package niltile

// Bytes, GOBs, and Tiles are marker types used to tag an Extent3D or
// Offset3D with the unit its three components are measured in. They carry
// no data; their only job is to stop a tile-granularity extent and a
// byte-granularity extent from being accidentally interchanged at a
// function boundary.
type (
	Bytes struct{}
	GOBs  struct{}
	Tiles struct{}
)

// Extent3D is a width/height/depth triple tagged with the unit it is
// measured in (Bytes, GOBs, or Tiles). The Unit parameter exists purely
// for the compiler; Extent3D[Bytes]{64, 8, 1} and Extent3D[GOBs]{64, 8, 1}
// have identical representations but are not assignable to one another.
type Extent3D[Unit any] struct {
	Width, Height, Depth int
}

// Offset3D is an x/y/z triple tagged the same way as Extent3D.
type Offset3D[Unit any] struct {
	X, Y, Z int
}

// Add returns the component-wise sum of o and d.
func (o Offset3D[Unit]) Add(d Offset3D[Unit]) Offset3D[Unit] {
	return Offset3D[Unit]{X: o.X + d.X, Y: o.Y + d.Y, Z: o.Z + d.Z}
}

// InExtent reports whether o falls within the half-open box [0,e).
func (o Offset3D[Unit]) InExtent(e Extent3D[Unit]) bool {
	return o.X >= 0 && o.X < e.Width &&
		o.Y >= 0 && o.Y < e.Height &&
		o.Z >= 0 && o.Z < e.Depth
}

// Volume returns Width*Height*Depth.
func (e Extent3D[Unit]) Volume() int {
	return e.Width * e.Height * e.Depth
}
