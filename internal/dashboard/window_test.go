package dashboard

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

var epoch = time.Unix(1_700_000_000, 0)

func msAt(d time.Duration) int64 {
	return epoch.Add(d).UnixMilli()
}

func TestWindow_InsertEvictsStaleHead(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: epoch}
	w := NewWindow[CPULine](DefaultWindow, clock.Now)

	w.Insert(CPULine{Time: msAt(0)})

	clock.Set(epoch.Add(2000 * time.Second))
	w.Insert(CPULine{Time: msAt(2000 * time.Second)})

	assert.Equal(t, []CPULine{{Time: msAt(2000 * time.Second)}}, w.DrainAll())
}

func TestWindow_EvictionStopsAtFirstFresh(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: epoch}
	w := NewWindow[MemoryLine](10*time.Second, clock.Now)

	// out of order: a fresh record in front of a stale one shields it
	w.Insert(MemoryLine{Time: msAt(0), Physical: 1})
	w.Insert(MemoryLine{Time: msAt(8 * time.Second), Physical: 2})
	w.Insert(MemoryLine{Time: msAt(-5 * time.Second), Physical: 3})

	clock.Set(epoch.Add(15 * time.Second))
	w.Insert(MemoryLine{Time: msAt(15 * time.Second), Physical: 4})

	got := w.DrainAll()
	require.Len(t, got, 3)
	assert.Equal(t, []uint64{2, 3, 4}, []uint64{got[0].Physical, got[1].Physical, got[2].Physical})
}

func TestWindow_BoundaryIsKept(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: epoch}
	w := NewWindow[CPULine](DefaultWindow, clock.Now)

	w.Insert(CPULine{Time: msAt(0)})

	clock.Set(epoch.Add(DefaultWindow))
	w.Insert(CPULine{Time: msAt(DefaultWindow)})

	assert.Equal(t, 2, w.Len(), "an entry exactly window old is not stale")
}

func TestWindow_NoEvictionWhileIdle(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: epoch}
	w := NewWindow[CPULine](time.Second, clock.Now)

	w.Insert(CPULine{Time: msAt(0)})
	clock.Set(epoch.Add(time.Hour))

	assert.Len(t, w.DrainAll(), 1)
}

func TestWindow_DrainAll(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: epoch}
	w := NewWindow[CPULine](DefaultWindow, clock.Now)

	assert.Equal(t, []CPULine{}, w.DrainAll())

	w.Insert(CPULine{Time: msAt(0), Process: 0.1})
	w.Insert(CPULine{Time: msAt(time.Second), Process: 0.2})

	assert.Len(t, w.DrainAll(), 2)
	assert.Equal(t, []CPULine{}, w.DrainAll())
}

// TestWindow_HeadNeverStale checks the head after every insert of a growing clock
func TestWindow_HeadNeverStale(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: epoch}
	maxAge := 30 * time.Second
	w := NewWindow[CPULine](maxAge, clock.Now)

	for i := range 200 {
		now := epoch.Add(time.Duration(i) * 700 * time.Millisecond)
		clock.Set(now)
		w.Insert(CPULine{Time: now.UnixMilli()})

		w.mu.Lock()
		head := w.records[0]
		w.mu.Unlock()

		assert.LessOrEqual(t, now.UnixMilli()-head.Time, maxAge.Milliseconds())
	}
}
