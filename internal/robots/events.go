package robots

// Event is a semantic tag emitted during a tick, consumed by the audio collaborator.
type Event string

const (
	EventHit      Event = "hit"      // a pursuer was destroyed by debris or a pile-up
	EventCrash    Event = "crash"    // a pursuer reached the player
	EventWin      Event = "win"      // the level was cleared
	EventInvalid  Event = "invalid"  // a move or teleport was rejected
	EventTeleport Event = "teleport" // the player teleported
	EventLevel    Event = "level"    // a new level started after a clear
	EventZap      Event = "zap"      // the cannon destroyed a pursuer
)

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

// DrainEvents returns the events queued since the last drain and empties the queue.
func (e *Engine) DrainEvents() []Event {
	if len(e.events) == 0 {
		return nil
	}
	out := e.events
	e.events = nil
	return out
}

// PendingEvents returns a copy of the queued events without draining them.
func (e *Engine) PendingEvents() []Event {
	return append([]Event(nil), e.events...)
}
