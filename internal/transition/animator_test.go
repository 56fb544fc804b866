package transition

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestAnimatorFullCycle(t *testing.T) {
	a := NewAnimator(1, DefaultTiming())
	require.Equal(t, Collapsed, a.State())
	require.False(t, a.Mounted())

	req, ok := a.Set(true, t0)
	require.True(t, ok)
	require.Equal(t, Expanding, a.State())
	require.Equal(t, Expanded, req.Target)
	require.Equal(t, ms(300), req.After)
	require.True(t, a.Mounted())

	require.True(t, a.Complete(req.Run))
	require.Equal(t, Expanded, a.State())
	require.Equal(t, uuid.Nil, a.Run())
	require.Equal(t, 1.0, a.Position(t0.Add(ms(300))))

	req, ok = a.Set(false, t0.Add(ms(400)))
	require.True(t, ok)
	require.Equal(t, Collapsing, a.State())
	require.Equal(t, Collapsed, req.Target)
	require.True(t, a.Mounted(), "content stays mounted while collapsing")

	require.True(t, a.Complete(req.Run))
	require.Equal(t, Collapsed, a.State())
	require.False(t, a.Mounted())
}

func TestAnimatorIgnoresUnchangedFlag(t *testing.T) {
	a := NewAnimator(1, DefaultTiming())
	_, ok := a.Set(false, t0)
	require.False(t, ok)

	req, ok := a.Set(true, t0)
	require.True(t, ok)
	_, ok = a.Set(true, t0.Add(ms(10)))
	require.False(t, ok)
	require.Equal(t, req.Run, a.Run(), "repeated flag must not restart the run")
}

func TestAnimatorReversesFromCurrentPosition(t *testing.T) {
	a := NewAnimator(1, DefaultTiming())
	first, _ := a.Set(true, t0)

	mid := t0.Add(ms(150))
	before := a.Position(mid)
	assert.InDelta(t, 0.5, before, 1e-9)

	rev, ok := a.Set(false, mid)
	require.True(t, ok)
	require.Equal(t, Collapsing, a.State())
	assert.InDelta(t, before, a.Position(mid), 1e-9, "no jump on reversal")
	assert.Equal(t, ms(150), rev.After, "only the travelled share is spent going back")

	require.False(t, a.Complete(first.Run), "forward timer is cancelled")
	require.Equal(t, Collapsing, a.State())

	p1 := a.Position(mid.Add(ms(50)))
	p2 := a.Position(mid.Add(ms(100)))
	assert.Less(t, p1, before)
	assert.Less(t, p2, p1)

	require.True(t, a.Complete(rev.Run))
	require.Equal(t, Collapsed, a.State())
}

func TestAnimatorReversesCollapseBackToExpand(t *testing.T) {
	a := NewAnimator(1, DefaultTiming())
	req, _ := a.Set(true, t0)
	a.Complete(req.Run)

	collapse, _ := a.Set(false, t0)
	at := t0.Add(ms(75))
	p := a.Position(at)
	require.Greater(t, p, 0.0)
	require.Less(t, p, 1.0)

	back, ok := a.Set(true, at)
	require.True(t, ok)
	require.Equal(t, Expanding, a.State())
	assert.InDelta(t, p, a.Position(at), 1e-9)
	assert.Equal(t, time.Duration(float64(ms(300))*(1-p)), back.After)
	require.False(t, a.Complete(collapse.Run))
	require.True(t, a.Complete(back.Run))
	require.Equal(t, Expanded, a.State())
}

func TestAnimatorWithoutTimingIsInstant(t *testing.T) {
	a := NewAnimator(1, Timing{})
	_, ok := a.Set(true, t0)
	require.False(t, ok)
	require.Equal(t, Expanded, a.State())
	require.Equal(t, 1.0, a.Position(t0))

	_, ok = a.Set(false, t0)
	require.False(t, ok)
	require.Equal(t, Collapsed, a.State())
}

func TestAnimatorAdvanceSettlesOverdueRun(t *testing.T) {
	a := NewAnimator(1, DefaultTiming())
	req, _ := a.Set(true, t0)

	require.False(t, a.Advance(t0.Add(ms(299))))
	require.Equal(t, Expanding, a.State())
	require.True(t, a.Advance(t0.Add(ms(300))))
	require.Equal(t, Expanded, a.State())
	require.False(t, a.Complete(req.Run), "late notification after settle is a no-op")
}

func TestCompleteRejectsNilRun(t *testing.T) {
	a := NewAnimator(1, DefaultTiming())
	require.False(t, a.Complete(uuid.Nil))
	a.Set(true, t0)
	require.False(t, a.Complete(uuid.Nil))
	require.False(t, a.Complete(uuid.New()))
}

func TestStateString(t *testing.T) {
	require.Equal(t, "collapsed", Collapsed.String())
	require.Equal(t, "expanding", Expanding.String())
	require.Equal(t, "expanded", Expanded.String())
	require.Equal(t, "collapsing", Collapsing.String())
	require.Equal(t, "unknown", State(42).String())
}

func TestEaseEndpoints(t *testing.T) {
	require.Equal(t, 0.0, ease(0))
	require.Equal(t, 1.0, ease(1))
	require.InDelta(t, 0.5, ease(0.5), 1e-12)
}
