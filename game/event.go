package game

// EventKind discriminates game events
type EventKind uint8

const (
	EventHit EventKind = iota
	EventPoint
	EventRestart
)

func (k EventKind) String() string {
	switch k {
	case EventHit:
		return "hit"
	case EventPoint:
		return "point"
	case EventRestart:
		return "restart"
	}
	return "unknown"
}

// Event is something the driver may react to: a sound, a log line
type Event struct {
	Kind EventKind
	Side Side
	Tick uint64
}
