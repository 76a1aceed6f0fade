package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func utc(hour, minute int) time.Time {
	return time.Date(2026, 3, 15, hour, minute, 0, 0, time.UTC)
}

func TestNextRun_BeforeScheduledTime(t *testing.T) {
	next := NextRun(utc(4, 30), 6, 0)
	assert.Equal(t, utc(6, 0), next)
}

func TestNextRun_WithinGrace(t *testing.T) {
	// 3 minutes late still counts as today's run.
	next := NextRun(utc(6, 3), 6, 0)
	assert.Equal(t, utc(6, 0), next)
}

func TestNextRun_GraceBoundary(t *testing.T) {
	next := NextRun(utc(6, 5), 6, 0)
	assert.Equal(t, utc(6, 0), next)
}

func TestNextRun_PastGrace(t *testing.T) {
	next := NextRun(utc(6, 6), 6, 0)
	assert.Equal(t, utc(6, 0).Add(24*time.Hour), next)
}

func TestNextRun_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	local := time.Date(2026, 3, 15, 6, 30, 0, 0, loc) // 04:30 UTC

	next := NextRun(local, 6, 0)
	assert.Equal(t, utc(6, 0), next)
}

func TestFire_SkipsOverlappingRun(t *testing.T) {
	release := make(chan struct{})
	var mu sync.Mutex
	runs := 0

	s := New(6, 0, func(ctx context.Context) {
		mu.Lock()
		runs++
		mu.Unlock()
		<-release
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.fire(context.Background())
	}()

	// Wait until the first run holds the guard.
	for {
		mu.Lock()
		started := runs == 1
		mu.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}

	// Second tick while the first run is still going.
	s.fire(context.Background())

	mu.Lock()
	assert.Equal(t, 1, runs)
	mu.Unlock()

	close(release)
	wg.Wait()

	// Guard released, next tick runs again.
	s.fire(context.Background())

	mu.Lock()
	assert.Equal(t, 2, runs)
	mu.Unlock()
}

func TestRun_StopsOnCancel(t *testing.T) {
	s := New(6, 0, func(ctx context.Context) {})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on cancel")
	}
}
