package app

import "time"

// TickMsg triggers a frame update for animation.
type TickMsg time.Time
