// Package audio turns engine events into short synthesized tones.
// Sound is best-effort: when the speaker cannot be opened the player stays
// silent and the game runs unchanged.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-robots/internal/robots"
)

const sampleRate = beep.SampleRate(44100)

type note struct {
	freq float64
	dur  time.Duration
}

// melodies maps each event to the notes played for it.
var melodies = map[robots.Event][]note{
	robots.EventHit:      {{220, 60 * time.Millisecond}},
	robots.EventCrash:    {{110, 120 * time.Millisecond}, {82, 200 * time.Millisecond}},
	robots.EventWin:      {{523, 90 * time.Millisecond}, {659, 90 * time.Millisecond}, {784, 160 * time.Millisecond}},
	robots.EventInvalid:  {{150, 80 * time.Millisecond}},
	robots.EventTeleport: {{880, 50 * time.Millisecond}, {1320, 50 * time.Millisecond}},
	robots.EventLevel:    {{392, 80 * time.Millisecond}, {523, 120 * time.Millisecond}},
	robots.EventZap:      {{1200, 40 * time.Millisecond}},
}

// priority orders the events of one tick before they are queued.
var priority = []robots.Event{
	robots.EventCrash,
	robots.EventWin,
	robots.EventLevel,
	robots.EventHit,
	robots.EventZap,
	robots.EventTeleport,
	robots.EventInvalid,
}

// Tone builds the streamer for ev at the given volume (0..1).
// It returns nil for events without a melody or a silent volume.
func Tone(ev robots.Event, sr beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := melodies[ev]
	if !ok || volume <= 0 {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sr, n.freq)
		if err != nil {
			continue
		}
		parts = append(parts, beep.Take(sr.N(n.dur), sine))
	}
	if len(parts) == 0 {
		return nil
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   math.Log2(volume),
	}
}

// Order returns the events that have a tone, most important first.
// Repeated events are kept.
func Order(events []robots.Event) []robots.Event {
	var out []robots.Event
	for _, want := range priority {
		for _, ev := range events {
			if ev == want {
				out = append(out, ev)
			}
		}
	}
	return out
}
