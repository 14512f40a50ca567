package processing

import (
	"fmt"
	"sync"
	"time"
)

// Countdown is a progress timer for long scans. It counts whole seconds down
// to zero and can be stopped early. It never affects scan data.
type Countdown struct {
	tick time.Duration

	mu        sync.Mutex
	remaining int
	run       *countdownRun
}

type countdownRun struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func (r *countdownRun) halt() {
	r.once.Do(func() { close(r.stop) })
	<-r.done
}

// NewCountdown creates an idle countdown that decrements once per tick.
func NewCountdown(tick time.Duration) *Countdown {
	if tick <= 0 {
		tick = time.Second
	}
	return &Countdown{tick: tick}
}

// Start begins counting down from total, replacing any running countdown.
// The returned func stops this run and resets the countdown to idle.
func (c *Countdown) Start(total int) (stop func()) {
	c.mu.Lock()
	prev := c.run
	c.run = nil
	c.remaining = 0
	c.mu.Unlock()
	if prev != nil {
		prev.halt()
	}

	if total <= 0 {
		return func() {}
	}

	run := &countdownRun{stop: make(chan struct{}), done: make(chan struct{})}
	c.mu.Lock()
	c.run = run
	c.remaining = total
	c.mu.Unlock()

	go c.loop(run)

	return func() {
		run.halt()
		c.mu.Lock()
		if c.run == run {
			c.run = nil
			c.remaining = 0
		}
		c.mu.Unlock()
	}
}

func (c *Countdown) loop(run *countdownRun) {
	defer close(run.done)

	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	for {
		select {
		case <-run.stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			if c.run != run {
				c.mu.Unlock()
				return
			}
			c.remaining--
			if c.remaining <= 0 {
				c.remaining = 0
				c.run = nil
				c.mu.Unlock()
				return
			}
			c.mu.Unlock()
		}
	}
}

// Remaining returns the seconds left, 0 when idle.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Active reports whether a countdown is running.
func (c *Countdown) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.run != nil
}

// FormatRemaining renders seconds as m:ss.
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
