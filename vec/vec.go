// package vec provides 2 and 3 dimensional float32 vectors. They are plain
// value types composed entirely from the f32 kernel, so everything here
// inherits its determinism.
package vec

import (
	"fmt"

	"github.com/pfcm/fmath/f32"
)

// V2 is a 2D vector.
type V2 struct {
	X, Y float32
}

func (v V2) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }

// Add returns a + b componentwise.
func (a V2) Add(b V2) V2 { return V2{a.X + b.X, a.Y + b.Y} }

// Sub returns a - b componentwise.
func (a V2) Sub(b V2) V2 { return V2{a.X - b.X, a.Y - b.Y} }

// Scale multiplies both components by s.
func (a V2) Scale(s float32) V2 { return V2{a.X * s, a.Y * s} }

// Dot is the scalar product.
func (a V2) Dot(b V2) float32 { return a.X*b.X + a.Y*b.Y }

// Len is the euclidean length.
func (a V2) Len() float32 { return f32.Sqrt(a.Dot(a)) }

// Norm returns the unit vector in a's direction. Vectors at or below Epsilon
// length come back unchanged; there is no direction to preserve.
func (a V2) Norm() V2 {
	l := a.Len()
	if l <= f32.Epsilon {
		return a
	}
	return a.Scale(1 / l)
}

// V3 is a 3D vector.
type V3 struct {
	X, Y, Z float32
}

func (v V3) String() string { return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z) }

// Add returns a + b componentwise.
func (a V3) Add(b V3) V3 { return V3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// Sub returns a - b componentwise.
func (a V3) Sub(b V3) V3 { return V3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Scale multiplies all components by s.
func (a V3) Scale(s float32) V3 { return V3{a.X * s, a.Y * s, a.Z * s} }

// Dot is the scalar product.
func (a V3) Dot(b V3) float32 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross is the vector product, perpendicular to both inputs with the usual
// right-hand orientation.
func (a V3) Cross(b V3) V3 {
	return V3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len is the euclidean length.
func (a V3) Len() float32 { return f32.Sqrt(a.Dot(a)) }

// Norm returns the unit vector in a's direction, or a unchanged when it is at
// or below Epsilon length.
func (a V3) Norm() V3 {
	l := a.Len()
	if l <= f32.Epsilon {
		return a
	}
	return a.Scale(1 / l)
}
