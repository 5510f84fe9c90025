package parameter

// Frame Loop Timing
const (
	// MinFPS and MaxFPS bound the configurable frame rate
	MinFPS = 10
	MaxFPS = 240

	// DefaultFPS is the simulation tick and render rate
	DefaultFPS = 60

	// CommandQueueSize is the capacity of the loop's posted-command channel
	CommandQueueSize = 256
)
