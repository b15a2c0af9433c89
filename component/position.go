package component

// Position places an entity in the world, with a facing angle in degrees.
type Position struct {
	X, Y  float64
	Angle float64
}
