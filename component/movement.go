package component

// Movement holds an entity's linear velocity and acceleration in units
// per second, and its rotation rate in degrees per second.
type Movement struct {
	VX, VY   float64
	AX, AY   float64
	Rotation float64
}
