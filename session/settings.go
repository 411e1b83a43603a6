package session

// Settings holds every knob a caller might tweak before generating a
// toolpath. Zero-valued fields are invalid; always start from
// NewSettings and override individual fields.
type Settings struct {
	// Step is the XY lattice spacing used when rasterising both the
	// terrain and tool meshes into point clouds.
	Step float32

	// XStep, YStep are the integer cell strides through the terrain
	// height map at which the tool is evaluated.
	XStep, YStep int32

	// OOBZ is the Z value reported for a toolpath sample left
	// unconstrained by any tool point (see package toolpath).
	OOBZ float32

	// OOBPolicyClamp selects the non-default, legacy out-of-bounds
	// handling (see toolpath.ClampOutOfBounds) instead of the
	// specified skip behaviour.
	OOBPolicyClamp bool

	// Workers records a goroutine count for row-parallel generation
	// (0 or 1 meaning serial). Nothing in this module reads it:
	// GenerateConcurrent takes its worker count as an argument, and the
	// generate command takes it from --workers.
	Workers int
}

// NewSettings returns Settings filled with sensible defaults: a 1-unit
// sampling step, unit strides, an out-of-bounds Z of -100 (clearly below
// any real terrain), and serial generation.
func NewSettings() Settings {
	return Settings{
		Step:           1.0,
		XStep:          1,
		YStep:          1,
		OOBZ:           -100,
		OOBPolicyClamp: false,
		Workers:        0,
	}
}
