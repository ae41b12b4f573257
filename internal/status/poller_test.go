package status

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"

	"xrpanel/internal/engine"
	"xrpanel/internal/interact"
)

func newBoundTarget(t *testing.T) (*interact.System, *interact.Interaction) {
	t.Helper()
	node := engine.NewNode("StatusPanel")
	node.AddComponent(interact.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1}))
	target := interact.NewInteraction(nil)
	node.AddComponent(target)

	sys := interact.NewSystem(interact.NewRegistry())
	sys.Registry.Register(target)
	return sys, target
}

// pump ticks the system until cond holds or the deadline passes.
func pump(t *testing.T, sys *interact.System, cond func() bool) {
	t.Helper()
	require.Eventually(t, func() bool {
		sys.Update(time.Now())
		return cond()
	}, 2*time.Second, 5*time.Millisecond)
}

func TestPollerDrivesActiveOverride(t *testing.T) {
	sys, target := newBoundTarget(t)

	var condition atomic.Bool
	condition.Store(true)
	p := NewPoller(sys, target, 2*time.Millisecond, func(ctx context.Context) (bool, error) {
		return condition.Load(), nil
	})

	p.Start(context.Background())
	defer p.Stop()

	pump(t, sys, func() bool { return target.State() == interact.StateActive })

	condition.Store(false)
	pump(t, sys, func() bool { return target.State() == interact.StateIdle })
}

func TestPollerStopClearsOverride(t *testing.T) {
	sys, target := newBoundTarget(t)

	p := NewPoller(sys, target, 2*time.Millisecond, func(ctx context.Context) (bool, error) {
		return true, nil
	})
	p.Start(context.Background())
	pump(t, sys, func() bool { return target.State() == interact.StateActive })

	p.Stop()
	require.False(t, p.Running())

	sys.Update(time.Now())
	require.Equal(t, interact.StateIdle, target.State(),
		"stop must clear the pending override at the next tick")
}

func TestPollerSkipsFailedProbes(t *testing.T) {
	sys, target := newBoundTarget(t)

	var calls atomic.Int32
	p := NewPoller(sys, target, 2*time.Millisecond, func(ctx context.Context) (bool, error) {
		if calls.Add(1) < 3 {
			return false, errors.New("backend unreachable")
		}
		return true, nil
	})
	p.Start(context.Background())
	defer p.Stop()

	// Failed probes change nothing; the scheduled next interval recovers.
	pump(t, sys, func() bool { return target.State() == interact.StateActive })
	require.GreaterOrEqual(t, calls.Load(), int32(3))
}

func TestPollerStartIsIdempotent(t *testing.T) {
	sys, target := newBoundTarget(t)

	p := NewPoller(sys, target, time.Millisecond, func(ctx context.Context) (bool, error) {
		return false, nil
	})
	p.Start(context.Background())
	p.Start(context.Background())
	require.True(t, p.Running())

	p.Stop()
	require.False(t, p.Running())
	p.Stop() // no panic on double stop
}
