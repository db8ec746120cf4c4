package service

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/OfficialHisha/MeetBot/internal/domain"
	"github.com/OfficialHisha/MeetBot/internal/domain/entity"
	"github.com/jmhodges/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestScheduler(m allMocks, clk clock.Clock, sideChannels bool) *scheduler {
	timers := newTimerManager(m.mockDataManager, m.mockSink, clk, testLogger())

	return newScheduler(m.mockDataManager, m.mockSink, timers, clk, testLogger(), Config{
		Interval:            domain.DefaultSchedulerInterval,
		LookaheadWindow:     domain.DefaultLookaheadWindow,
		UrgentThreshold:     domain.DefaultUrgentThreshold,
		RetentionPeriod:     domain.DefaultRetentionPeriod,
		SideChannelsEnabled: sideChannels,
	})
}

func Test_newScheduler(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	clk := clock.NewFake()
	s := newTestScheduler(m, clk, false)

	require.NotNil(t, s)
	assert.Equal(t, m.mockDataManager, s.dm)
	assert.Equal(t, m.mockSink, s.sink)
	assert.NotNil(t, s.timers)
	assert.NotNil(t, s.stopChan)
	assert.False(t, s.running)
}

func Test_scheduler_runCycle(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		sideChannels bool
		buildMock    func(m allMocks)
		wantInFlight []int64
	}{
		{
			name: "Should send the hour reminder when the meeting enters the hour window",
			buildMock: func(m allMocks) {
				meeting := &entity.Meeting{
					ID:           1,
					Description:  "standup",
					ScheduledAt:  now.Add(45 * time.Minute),
					Participants: []string{"U111"},
					Notification: entity.NotificationNone,
				}

				m.mockMeetingRepo.EXPECT().GetStale(now, domain.DefaultRetentionPeriod).Return(nil, nil).Times(1)
				m.mockMeetingRepo.EXPECT().GetDueWithin(now, domain.DefaultLookaheadWindow).
					Return([]*entity.Meeting{meeting}, nil).Times(1)

				gomock.InOrder(
					m.mockMeetingRepo.EXPECT().
						SetNotificationState(int64(1), entity.NotificationHour).
						Return(nil).Times(1),
					m.mockSink.EXPECT().
						Announce("Meeting 'standup' for <@U111> starts in 45 minutes").
						Return(nil).Times(1),
				)
			},
		},
		{
			name: "Should skip straight to the minute reminder and arm a countdown",
			buildMock: func(m allMocks) {
				meeting := &entity.Meeting{
					ID:           2,
					Description:  "retro",
					ScheduledAt:  now.Add(5 * time.Minute),
					Participants: []string{"U111", "S222"},
					Notification: entity.NotificationNone,
				}

				m.mockMeetingRepo.EXPECT().GetStale(now, domain.DefaultRetentionPeriod).Return(nil, nil).Times(1)
				m.mockMeetingRepo.EXPECT().GetDueWithin(now, domain.DefaultLookaheadWindow).
					Return([]*entity.Meeting{meeting}, nil).Times(1)

				gomock.InOrder(
					m.mockMeetingRepo.EXPECT().
						SetNotificationState(int64(2), entity.NotificationMinute).
						Return(nil).Times(1),
					m.mockSink.EXPECT().
						Announce("Meeting 'retro' for <@U111> <!subteam^S222> starts in 5 minutes").
						Return(nil).Times(1),
				)
			},
			wantInFlight: []int64{2},
		},
		{
			name: "Should promote an hour-notified meeting once inside the urgent window",
			buildMock: func(m allMocks) {
				meeting := &entity.Meeting{
					ID:           3,
					Description:  "planning",
					ScheduledAt:  now.Add(9 * time.Minute),
					Participants: []string{"U111"},
					Notification: entity.NotificationHour,
				}

				m.mockMeetingRepo.EXPECT().GetStale(now, domain.DefaultRetentionPeriod).Return(nil, nil).Times(1)
				m.mockMeetingRepo.EXPECT().GetDueWithin(now, domain.DefaultLookaheadWindow).
					Return([]*entity.Meeting{meeting}, nil).Times(1)

				gomock.InOrder(
					m.mockMeetingRepo.EXPECT().
						SetNotificationState(int64(3), entity.NotificationMinute).
						Return(nil).Times(1),
					m.mockSink.EXPECT().
						Announce("Meeting 'planning' for <@U111> starts in 9 minutes").
						Return(nil).Times(1),
				)
			},
			wantInFlight: []int64{3},
		},
		{
			name: "Should not touch meetings outside the hour window or already at the minute tier",
			buildMock: func(m allMocks) {
				meetings := []*entity.Meeting{
					{ID: 4, ScheduledAt: now.Add(61 * time.Minute), Notification: entity.NotificationNone},
					{ID: 5, ScheduledAt: now.Add(3 * time.Minute), Notification: entity.NotificationMinute},
				}

				m.mockMeetingRepo.EXPECT().GetStale(now, domain.DefaultRetentionPeriod).Return(nil, nil).Times(1)
				m.mockMeetingRepo.EXPECT().GetDueWithin(now, domain.DefaultLookaheadWindow).
					Return(meetings, nil).Times(1)
			},
		},
		{
			name: "Should still arm the countdown when the announcement fails",
			buildMock: func(m allMocks) {
				meeting := &entity.Meeting{
					ID:           6,
					Description:  "sync",
					ScheduledAt:  now.Add(4 * time.Minute),
					Participants: []string{"U111"},
					Notification: entity.NotificationNone,
				}

				m.mockMeetingRepo.EXPECT().GetStale(now, domain.DefaultRetentionPeriod).Return(nil, nil).Times(1)
				m.mockMeetingRepo.EXPECT().GetDueWithin(now, domain.DefaultLookaheadWindow).
					Return([]*entity.Meeting{meeting}, nil).Times(1)

				m.mockMeetingRepo.EXPECT().
					SetNotificationState(int64(6), entity.NotificationMinute).
					Return(nil).Times(1)
				m.mockSink.EXPECT().
					Announce(gomock.Any()).
					Return(fmt.Errorf("slack unavailable")).Times(1)
			},
			wantInFlight: []int64{6},
		},
		{
			name: "Should not announce when persisting the state fails",
			buildMock: func(m allMocks) {
				meeting := &entity.Meeting{
					ID:           7,
					ScheduledAt:  now.Add(45 * time.Minute),
					Notification: entity.NotificationNone,
				}

				m.mockMeetingRepo.EXPECT().GetStale(now, domain.DefaultRetentionPeriod).Return(nil, nil).Times(1)
				m.mockMeetingRepo.EXPECT().GetDueWithin(now, domain.DefaultLookaheadWindow).
					Return([]*entity.Meeting{meeting}, nil).Times(1)

				m.mockMeetingRepo.EXPECT().
					SetNotificationState(int64(7), entity.NotificationHour).
					Return(fmt.Errorf("disk full")).Times(1)
			},
		},
		{
			name: "Should keep processing other meetings when one record fails",
			buildMock: func(m allMocks) {
				meetings := []*entity.Meeting{
					{ID: 8, Description: "a", ScheduledAt: now.Add(30 * time.Minute), Notification: entity.NotificationNone},
					{ID: 9, Description: "b", Participants: []string{"U111"}, ScheduledAt: now.Add(40 * time.Minute), Notification: entity.NotificationNone},
				}

				m.mockMeetingRepo.EXPECT().GetStale(now, domain.DefaultRetentionPeriod).Return(nil, nil).Times(1)
				m.mockMeetingRepo.EXPECT().GetDueWithin(now, domain.DefaultLookaheadWindow).
					Return(meetings, nil).Times(1)

				m.mockMeetingRepo.EXPECT().
					SetNotificationState(int64(8), entity.NotificationHour).
					Return(fmt.Errorf("disk full")).Times(1)
				m.mockMeetingRepo.EXPECT().
					SetNotificationState(int64(9), entity.NotificationHour).
					Return(nil).Times(1)
				m.mockSink.EXPECT().
					Announce("Meeting 'b' for <@U111> starts in 40 minutes").
					Return(nil).Times(1)
			},
		},
		{
			name: "Should skip a meeting with an unrecognized notification state",
			buildMock: func(m allMocks) {
				meeting := &entity.Meeting{
					ID:           10,
					ScheduledAt:  now.Add(5 * time.Minute),
					Notification: entity.NotificationState(42),
				}

				m.mockMeetingRepo.EXPECT().GetStale(now, domain.DefaultRetentionPeriod).Return(nil, nil).Times(1)
				m.mockMeetingRepo.EXPECT().GetDueWithin(now, domain.DefaultLookaheadWindow).
					Return([]*entity.Meeting{meeting}, nil).Times(1)
			},
		},
		{
			name: "Should back off when the due query fails",
			buildMock: func(m allMocks) {
				m.mockMeetingRepo.EXPECT().GetStale(now, domain.DefaultRetentionPeriod).Return(nil, nil).Times(1)
				m.mockMeetingRepo.EXPECT().GetDueWithin(now, domain.DefaultLookaheadWindow).
					Return(nil, fmt.Errorf("store unreachable")).Times(1)
			},
		},
		{
			name:         "Should provision the side channel on the minute transition",
			sideChannels: true,
			buildMock: func(m allMocks) {
				meeting := &entity.Meeting{
					ID:           11,
					Description:  "kickoff",
					ScheduledAt:  now.Add(5 * time.Minute),
					Participants: []string{"U111"},
					Notification: entity.NotificationNone,
				}

				m.mockMeetingRepo.EXPECT().GetStale(now, domain.DefaultRetentionPeriod).Return(nil, nil).Times(1)
				m.mockMeetingRepo.EXPECT().GetDueWithin(now, domain.DefaultLookaheadWindow).
					Return([]*entity.Meeting{meeting}, nil).Times(1)

				m.mockMeetingRepo.EXPECT().
					SetNotificationState(int64(11), entity.NotificationMinute).
					Return(nil).Times(1)
				m.mockSink.EXPECT().Announce(gomock.Any()).Return(nil).Times(1)

				gomock.InOrder(
					m.mockSink.EXPECT().ProvisionSideChannel(meeting).Return("C999", nil).Times(1),
					m.mockMeetingRepo.EXPECT().SetSideChannel(int64(11), "C999").Return(nil).Times(1),
				)
			},
			wantInFlight: []int64{11},
		},
		{
			name:         "Should tear the side channel back down when the handle cannot be persisted",
			sideChannels: true,
			buildMock: func(m allMocks) {
				meeting := &entity.Meeting{
					ID:           12,
					Description:  "kickoff",
					ScheduledAt:  now.Add(5 * time.Minute),
					Participants: []string{"U111"},
					Notification: entity.NotificationNone,
				}

				m.mockMeetingRepo.EXPECT().GetStale(now, domain.DefaultRetentionPeriod).Return(nil, nil).Times(1)
				m.mockMeetingRepo.EXPECT().GetDueWithin(now, domain.DefaultLookaheadWindow).
					Return([]*entity.Meeting{meeting}, nil).Times(1)

				m.mockMeetingRepo.EXPECT().
					SetNotificationState(int64(12), entity.NotificationMinute).
					Return(nil).Times(1)
				m.mockSink.EXPECT().Announce(gomock.Any()).Return(nil).Times(1)

				gomock.InOrder(
					m.mockSink.EXPECT().ProvisionSideChannel(meeting).Return("C999", nil).Times(1),
					m.mockMeetingRepo.EXPECT().SetSideChannel(int64(12), "C999").Return(fmt.Errorf("disk full")).Times(1),
					m.mockSink.EXPECT().DestroySideChannel("C999").Return(nil).Times(1),
				)
			},
			wantInFlight: []int64{12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			clk := clock.NewFake()
			clk.Set(now)

			s := newTestScheduler(m, clk, tt.sideChannels)
			defer s.timers.Stop()

			tt.buildMock(m)
			s.runCycle()

			assert.ElementsMatch(t, tt.wantInFlight, s.timers.InFlight())
		})
	}
}

func Test_scheduler_sweepStale(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Should delete stale meetings and their side channels regardless of state", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		clk := clock.NewFake()
		clk.Set(now)
		s := newTestScheduler(m, clk, true)

		stale := []*entity.Meeting{
			{ID: 1, ScheduledAt: now.Add(-13 * time.Hour), Notification: entity.NotificationMinute, SideChannelID: "C100"},
			{ID: 2, ScheduledAt: now.Add(-14 * time.Hour), Notification: entity.NotificationNone},
		}

		m.mockMeetingRepo.EXPECT().GetStale(now, domain.DefaultRetentionPeriod).Return(stale, nil).Times(1)

		gomock.InOrder(
			m.mockMeetingRepo.EXPECT().Delete(int64(1)).Return(true, nil).Times(1),
			m.mockSink.EXPECT().DestroySideChannel("C100").Return(nil).Times(1),
		)
		m.mockMeetingRepo.EXPECT().Delete(int64(2)).Return(true, nil).Times(1)

		s.sweepStale(now)
	})

	t.Run("Should keep sweeping when one deletion fails", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		clk := clock.NewFake()
		clk.Set(now)
		s := newTestScheduler(m, clk, false)

		stale := []*entity.Meeting{
			{ID: 1, ScheduledAt: now.Add(-13 * time.Hour)},
			{ID: 2, ScheduledAt: now.Add(-14 * time.Hour)},
		}

		m.mockMeetingRepo.EXPECT().GetStale(now, domain.DefaultRetentionPeriod).Return(stale, nil).Times(1)
		m.mockMeetingRepo.EXPECT().Delete(int64(1)).Return(false, fmt.Errorf("locked")).Times(1)
		m.mockMeetingRepo.EXPECT().Delete(int64(2)).Return(true, nil).Times(1)

		s.sweepStale(now)
	})
}

func Test_scheduler_recoverInFlight(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Should re-arm countdowns with the remaining time recomputed from the clock", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		clk := clock.NewFake()
		clk.Set(now)
		s := newTestScheduler(m, clk, false)
		defer s.timers.Stop()

		// Persisted before the restart with 10 minutes of lead time; only 90
		// seconds actually remain.
		meeting := &entity.Meeting{
			ID:           1,
			Description:  "standup",
			Participants: []string{"U111"},
			ScheduledAt:  now.Add(90 * time.Second),
			Notification: entity.NotificationMinute,
		}

		m.mockMeetingRepo.EXPECT().GetDueWithin(now, domain.DefaultUrgentThreshold).
			Return([]*entity.Meeting{meeting}, nil).Times(1)

		var announced, deleted atomic.Bool
		m.mockSink.EXPECT().
			Announce("Meeting 'standup' for <@U111> starts now").
			DoAndReturn(func(string) error {
				announced.Store(true)
				return nil
			}).Times(1)
		m.mockMeetingRepo.EXPECT().Delete(int64(1)).
			DoAndReturn(func(int64) (bool, error) {
				deleted.Store(true)
				return true, nil
			}).Times(1)

		s.recoverInFlight()
		require.ElementsMatch(t, []int64{1}, s.timers.InFlight())

		// A stored minutes_remaining of 10 would fire at +10m, not +90s: the
		// countdown must not fire a full minute early...
		clk.Add(60 * time.Second)
		time.Sleep(20 * time.Millisecond)
		assert.False(t, announced.Load(), "countdown fired before the recomputed remaining time elapsed")

		// ...and must fire once the true remaining time has passed.
		clk.Add(31 * time.Second)
		require.Eventually(t, func() bool { return announced.Load() && deleted.Load() },
			time.Second, 5*time.Millisecond)
	})

	t.Run("Should promote meetings inside the urgent window that never reached the minute tier", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		clk := clock.NewFake()
		clk.Set(now)
		s := newTestScheduler(m, clk, false)
		defer s.timers.Stop()

		meeting := &entity.Meeting{
			ID:           2,
			Description:  "retro",
			Participants: []string{"U111"},
			ScheduledAt:  now.Add(5 * time.Minute),
			Notification: entity.NotificationHour,
		}

		m.mockMeetingRepo.EXPECT().GetDueWithin(now, domain.DefaultUrgentThreshold).
			Return([]*entity.Meeting{meeting}, nil).Times(1)

		gomock.InOrder(
			m.mockMeetingRepo.EXPECT().
				SetNotificationState(int64(2), entity.NotificationMinute).
				Return(nil).Times(1),
			m.mockSink.EXPECT().
				Announce("Meeting 'retro' for <@U111> starts in 5 minutes").
				Return(nil).Times(1),
		)

		s.recoverInFlight()
		assert.ElementsMatch(t, []int64{2}, s.timers.InFlight())
	})
}
