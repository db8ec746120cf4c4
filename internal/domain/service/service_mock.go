package service

import (
	"testing"

	"github.com/OfficialHisha/MeetBot/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockMeetingRepo *mocks.MockMeetingRepo
	mockSink        *mocks.MockAnnouncementSink
	mockSlackClient *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	meetingRepo := mocks.NewMockMeetingRepo(ctrl)
	dm.EXPECT().Meeting().Return(meetingRepo).AnyTimes()

	sink := mocks.NewMockAnnouncementSink(ctrl)
	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager: dm,
		mockMeetingRepo: meetingRepo,
		mockSink:        sink,
		mockSlackClient: slackClient,
	}

	// validate service creation
	meetingService := newMeetingService(dm, sink, testLogger())
	require.NotNil(t, meetingService)

	return
}
