package parameter

// Dungeon Defaults
const (
	// SandboxWidth and SandboxHeight are the default generated level size
	SandboxWidth  = 40
	SandboxHeight = 40

	// MaxDepth is the deepest dungeon level
	MaxDepth = 24

	// HellfireDepthMin is the first depth of the expansion levels
	HellfireDepthMin = 17

	// HoldingCell is the off-map tile a dormant golem waits in
	HoldingCellX = 1
	HoldingCellY = 0

	// PerlinAlpha, PerlinBeta and PerlinOctaves tune the sandbox cave noise
	PerlinAlpha   = 2.0
	PerlinBeta    = 2.0
	PerlinOctaves = 3

	// PerlinWallThreshold marks tiles above this noise value solid
	PerlinWallThreshold = 0.12
)
