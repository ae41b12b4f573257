// Package status delivers externally polled state into the interaction
// tick. A widget whose look mirrors some backend condition binds a Poller
// to its interaction target; the poller runs on its own goroutine but all
// state changes land at tick boundaries through System.PostOverride, never
// in the middle of a tick.
package status

import (
	"context"
	"log"
	"sync"
	"time"

	"xrpanel/internal/interact"
)

// Probe reports the external condition. true drives the bound target into
// the active override; false clears it.
type Probe func(ctx context.Context) (bool, error)

// Poller owns its timer state explicitly: Start spins it up, Stop tears it
// down and clears anything pending. No package-level state.
type Poller struct {
	Interval time.Duration
	Probe    Probe

	system *interact.System
	target *interact.Interaction

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	last    bool
	haveOne bool
}

func NewPoller(system *interact.System, target *interact.Interaction, interval time.Duration, probe Probe) *Poller {
	return &Poller{
		Interval: interval,
		Probe:    probe,
		system:   system,
		target:   target,
	}
}

// Start launches the polling loop. Calling Start on a running poller is a
// no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	go p.run(ctx, p.done)
}

// Stop tears the loop down and clears any still-pending override so a
// stale poll result cannot land after shutdown. Blocks until the loop has
// exited.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	p.system.PostOverride(p.target, false)
}

// Running reports whether the loop is live.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

func (p *Poller) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	active, err := p.Probe(ctx)
	if err != nil {
		// The poll itself is not retried; the next interval probes again.
		log.Printf("status poll failed: %v", err)
		return
	}

	p.mu.Lock()
	changed := !p.haveOne || active != p.last
	p.last, p.haveOne = active, true
	p.mu.Unlock()

	if changed {
		p.system.PostOverride(p.target, active)
	}
}
