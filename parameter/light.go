package parameter

// Lighting
const (
	// LightPoolSize is the number of simultaneous dynamic lights
	LightPoolSize = 32

	// LightMaxRadius is the largest radius a light may be set to
	LightMaxRadius = 15
)
