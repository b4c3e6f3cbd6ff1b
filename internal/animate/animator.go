// Package animate drives frame-by-frame drawings on a canvas. Timing lives
// in Animator; what is drawn lives in an Animation.
package animate

import (
	"context"
	"time"
)

// DefaultInterval is the time between frames (~12.5 FPS).
const DefaultInterval = 80 * time.Millisecond

// Animation draws the frames of one animation.
type Animation interface {
	// Start is called once before the first tick and draws the initial frame.
	Start()

	// Stop is called once when the animation ends.
	Stop()

	// Render advances the animation state and draws the next frame.
	Render()

	// FrameCount returns the number of frames in one cycle.
	FrameCount() int
}

// Animator runs an Animation on a ticker in its own goroutine.
type Animator struct {
	interval  time.Duration
	cancel    context.CancelFunc
	done      chan struct{}
	animation Animation
}

// NewAnimator creates an Animator ticking every DefaultInterval.
func NewAnimator(animation Animation) *Animator {
	return &Animator{
		interval:  DefaultInterval,
		animation: animation,
	}
}

// SetInterval changes the frame interval. It takes effect on the next Start.
func (a *Animator) SetInterval(d time.Duration) {
	if d > 0 {
		a.interval = d
	}
}

// Start begins the animation. It ends when Stop is called or ctx is
// cancelled. Starting a running animator is a no-op.
func (a *Animator) Start(ctx context.Context) {
	if a.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.done = make(chan struct{})

	go a.run(ctx)
}

func (a *Animator) run(ctx context.Context) {
	defer close(a.done)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.animation.Start()
	for {
		select {
		case <-ctx.Done():
			a.animation.Stop()
			return
		case <-ticker.C:
			a.animation.Render()
		}
	}
}

// Done is closed once the animation goroutine has exited. It is nil before
// the first Start.
func (a *Animator) Done() <-chan struct{} {
	return a.done
}

// Stop ends the animation and waits for its goroutine to exit. Stopping an
// idle animator is a no-op.
func (a *Animator) Stop() {
	if a.cancel == nil {
		return
	}
	a.cancel()
	<-a.done
	a.cancel = nil
}
