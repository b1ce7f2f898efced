package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-robots/internal/robots"
)

// DefaultWait is the number of frames after a sound before the next queued
// sound may start.
const DefaultWait = 4

// Player queues event tones and plays at most one per Wait frames.
type Player struct {
	mu       sync.Mutex
	ready    bool
	muted    bool
	volume   float64
	wait     int
	cooldown int
	queue    []robots.Event
	play     func(beep.Streamer)
	logger   *log.Logger
}

// NewPlayer creates a silent player. Call Init to open the speaker.
func NewPlayer(logger *log.Logger) *Player {
	return &Player{
		volume: 0.4,
		wait:   DefaultWait,
		play:   func(s beep.Streamer) { speaker.Play(s) },
		logger: logger,
	}
}

// Init opens the speaker. A failure is logged and leaves the player silent;
// the error is returned for callers that want to report it.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		if p.logger != nil {
			p.logger.Warn("audio disabled", "error", err)
		}
		return err
	}
	p.ready = true
	return nil
}

// SetMuted toggles sound without closing the speaker. Muting drops the queue.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
	if muted {
		p.queue = nil
	}
}

// Muted reports whether sound is off.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Enqueue adds the tones of one engine tick to the queue.
func (p *Player) Enqueue(events []robots.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || p.muted {
		return
	}
	p.queue = append(p.queue, Order(events)...)
}

// Pending returns the number of queued tones.
func (p *Player) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// Tick is called once per frame. It starts the next queued tone unless the
// previous one is still cooling down, and returns the event it played.
func (p *Player) Tick() (robots.Event, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cooldown > 0 {
		p.cooldown--
		return "", false
	}
	if len(p.queue) == 0 {
		return "", false
	}

	ev := p.queue[0]
	p.queue = p.queue[1:]
	s := Tone(ev, sampleRate, p.volume)
	if s == nil {
		return "", false
	}
	p.play(s)
	p.cooldown = p.wait
	return ev, true
}

// Close stops any queued sound.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.queue = nil
	if p.ready {
		speaker.Clear()
	}
}
