package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/OfficialHisha/MeetBot/internal/domain/contract"
	"github.com/OfficialHisha/MeetBot/internal/domain/entity"
	"github.com/jmhodges/clock"
	"github.com/rs/zerolog"
)

// timerManager owns one countdown task per meeting that has reached the
// minute tier. Tasks are fire-and-forget from the scheduler's point of view
// but tracked here so they can be enumerated and drained on shutdown.
type timerManager struct {
	dm   contract.DataManager
	sink contract.AnnouncementSink
	clk  clock.Clock
	log  zerolog.Logger

	mu       sync.Mutex
	inFlight map[int64]struct{}
	stopChan chan struct{}
	wg       sync.WaitGroup
}

func newTimerManager(dm contract.DataManager, sink contract.AnnouncementSink, clk clock.Clock, log zerolog.Logger) *timerManager {
	return &timerManager{
		dm:       dm,
		sink:     sink,
		clk:      clk,
		log:      log,
		inFlight: make(map[int64]struct{}),
		stopChan: make(chan struct{}),
	}
}

// Schedule arms the countdown for a meeting. A meeting already owned by a
// task is left alone, so re-scans and the startup recovery pass cannot arm a
// second timer for the same record. The countdown channel is registered
// before the task goroutine starts, so the timer exists by the time Schedule
// returns.
func (t *timerManager) Schedule(meeting *entity.Meeting, remaining time.Duration) {
	t.mu.Lock()
	if _, ok := t.inFlight[meeting.ID]; ok {
		t.mu.Unlock()
		return
	}
	t.inFlight[meeting.ID] = struct{}{}
	t.mu.Unlock()

	if remaining < 0 {
		remaining = 0
	}
	fired := t.clk.After(remaining)

	t.log.Info().
		Int64("meeting_id", meeting.ID).
		Dur("remaining", remaining).
		Msg("countdown armed")

	t.wg.Add(1)
	go t.run(meeting, fired)
}

func (t *timerManager) run(meeting *entity.Meeting, fired <-chan time.Time) {
	defer t.wg.Done()
	defer func() {
		t.mu.Lock()
		delete(t.inFlight, meeting.ID)
		t.mu.Unlock()
	}()

	select {
	case <-fired:
	case <-t.stopChan:
		// The countdown resumes on next start via the recovery pass.
		return
	}

	t.retire(meeting)
}

// retire finishes the meeting lifecycle: final announcement, then removal of
// the record and any side channel. Every step is idempotent on failure; a
// record that survives here is reclaimed by the stale sweep.
func (t *timerManager) retire(meeting *entity.Meeting) {
	text := fmt.Sprintf("Meeting '%s' for %s starts now", meeting.Description, meeting.Mentions())
	if err := t.sink.Announce(text); err != nil {
		t.log.Error().Err(err).Int64("meeting_id", meeting.ID).Msg("failed to announce meeting start")
	}

	deleted, err := t.dm.Meeting().Delete(meeting.ID)
	if err != nil {
		t.log.Error().Err(err).Int64("meeting_id", meeting.ID).Msg("failed to delete meeting; stale sweep will reclaim it")
		return
	}
	if !deleted {
		// Already cancelled or retired elsewhere, nothing left to do.
		t.log.Debug().Int64("meeting_id", meeting.ID).Msg("meeting already removed")
		return
	}

	if meeting.SideChannelID != "" {
		if err := t.sink.DestroySideChannel(meeting.SideChannelID); err != nil {
			t.log.Error().Err(err).
				Int64("meeting_id", meeting.ID).
				Str("side_channel_id", meeting.SideChannelID).
				Msg("failed to destroy side channel")
		}
	}

	t.log.Info().Int64("meeting_id", meeting.ID).Msg("meeting retired")
}

// InFlight returns the ids of meetings currently owned by a countdown task.
func (t *timerManager) InFlight() []int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids := make([]int64, 0, len(t.inFlight))
	for id := range t.inFlight {
		ids = append(ids, id)
	}
	return ids
}

// Stop abandons all countdowns and waits for the tasks to exit. Pending
// timers are not fired early; they are re-derived from the store on the next
// process start.
func (t *timerManager) Stop() {
	close(t.stopChan)
	t.wg.Wait()
}
