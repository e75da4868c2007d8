package core

// InputFrame is everything the game loop hands to the game for one tick.
// It is assembled by the platform from the direction buffer and the keyboard.
type InputFrame struct {
	Direction Direction // Pending gesture, DirNone when nothing arrived since the last tick
	Boost     bool      // Pinch held during the latest capture poll
	Quit      bool      // User asked to leave
}

// HasDirection returns true if a gesture is pending.
func (f InputFrame) HasDirection() bool {
	return f.Direction != DirNone
}
