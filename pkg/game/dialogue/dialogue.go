// Package dialogue provides the timed dialogue queue and the level script.
package dialogue

import "github.com/zyedidia/generic/queue"

// Line is one immutable dialogue beat.
type Line struct {
	Speaker string
	Text    string
}

// Box queues dialogue lines and shows one at a time. Every line is displayed
// for the full fixed duration regardless of its length, and no line is ever
// skipped or dropped.
type Box struct {
	pending      *queue.Queue[Line]
	active       *Line
	timer        float64
	lineDuration float64
}

// NewBox creates an empty dialogue box whose lines each display for
// lineDuration seconds.
func NewBox(lineDuration float64) *Box {
	return &Box{
		pending:      queue.New[Line](),
		lineDuration: lineDuration,
	}
}

// AddLines appends lines to the tail of the queue. If nothing is currently
// shown, the head of the queue is promoted immediately; otherwise the active
// line keeps its remaining time.
func (b *Box) AddLines(lines ...Line) {
	for _, line := range lines {
		b.pending.Enqueue(line)
	}
	if b.active == nil && !b.pending.Empty() {
		b.advance()
	}
}

// Update counts down the active line and promotes the next one when the
// timer runs out.
func (b *Box) Update(dt float64) {
	if b.active == nil {
		return
	}
	b.timer -= dt
	if b.timer <= 0 {
		b.advance()
	}
}

func (b *Box) advance() {
	if !b.pending.Empty() {
		line := b.pending.Dequeue()
		b.active = &line
		b.timer = b.lineDuration
	} else {
		b.active = nil
	}
}

// Active returns the currently shown line, if any.
func (b *Box) Active() (Line, bool) {
	if b.active == nil {
		return Line{}, false
	}
	return *b.active, true
}

// Remaining returns the seconds left for the active line, zero when idle.
func (b *Box) Remaining() float64 {
	if b.active == nil {
		return 0
	}
	return b.timer
}

// Idle reports whether the box has nothing shown and nothing queued.
func (b *Box) Idle() bool {
	return b.active == nil && b.pending.Empty()
}
