package core

// RuntimeConfig describes the terminal a front-end draws into.
// The game rules live in config.RobotsConfig; this is only the frame.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second of the platform loop
}

// DefaultConfig returns an 80×40 terminal at 30 frames per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  40,
		TickRate: 30,
	}
}
