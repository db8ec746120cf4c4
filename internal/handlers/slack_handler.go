package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/OfficialHisha/MeetBot/internal/domain/contract"
	slackcmd "github.com/OfficialHisha/MeetBot/internal/slack"
	"github.com/jmhodges/clock"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	meetingService contract.MeetingService
	signingSecret  string
	clk            clock.Clock
	when           *when.Parser
}

func New(meetingService contract.MeetingService, signingSecret string, clk clock.Clock) *SlackHandler {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	return &SlackHandler{
		meetingService: meetingService,
		signingSecret:  signingSecret,
		clk:            clk,
		when:           w,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Handle command
	response := h.handleCommand(cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdSetup:
		return h.handleSetup(cmd, slashCmd)
	case slackcmd.CmdCancel:
		return h.handleCancel(cmd)
	case slackcmd.CmdReschedule:
		return h.handleReschedule(cmd)
	case slackcmd.CmdList:
		return h.handleList(slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleSetup(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	scheduledAt, ok := h.parseWhen(cmd.When)
	if !ok {
		return h.createErrorResponse("Could not understand the meeting time. " +
			"Example: `/meetbot setup @user1 @user2 october 3 at 7:30pm`")
	}

	meeting, err := h.meetingService.Setup(cmd.Title, scheduledAt, cmd.Mentions)
	if err != nil {
		return h.createErrorResponse("Error creating the meeting")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text: fmt.Sprintf("<@%s> setup meeting '%s' (id %d) at %s",
			slashCmd.UserID, meeting.Description, meeting.ID,
			meeting.ScheduledAt.Format("2006-01-02 15:04 MST")),
	}
}

func (h *SlackHandler) handleCancel(cmd *slackcmd.Command) *slack.Msg {
	cancelled, err := h.meetingService.Cancel(cmd.ID)
	if err != nil {
		return h.createErrorResponse("Error cancelling the meeting")
	}
	if !cancelled {
		return h.createErrorResponse(fmt.Sprintf("There is no meeting with id %d", cmd.ID))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("Cancelled meeting with id %d", cmd.ID),
	}
}

func (h *SlackHandler) handleReschedule(cmd *slackcmd.Command) *slack.Msg {
	scheduledAt, ok := h.parseWhen(cmd.When)
	if !ok {
		return h.createErrorResponse("Could not understand the new meeting time. " +
			"Example: `/meetbot reschedule 3 tomorrow at 10am`")
	}

	meeting, err := h.meetingService.Reschedule(cmd.ID, scheduledAt)
	if err != nil {
		return h.createErrorResponse("Error rescheduling the meeting")
	}
	if meeting == nil {
		return h.createErrorResponse(fmt.Sprintf("There is no meeting with id %d", cmd.ID))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text: fmt.Sprintf("Meeting '%s' (id %d) moved to %s",
			meeting.Description, meeting.ID,
			meeting.ScheduledAt.Format("2006-01-02 15:04 MST")),
	}
}

func (h *SlackHandler) handleList(slashCmd *slack.SlashCommand) *slack.Msg {
	meetings, err := h.meetingService.ListByParticipant(slashCmd.UserID)
	if err != nil {
		return h.createErrorResponse("Error listing meetings")
	}

	if len(meetings) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "You have no upcoming meetings",
		}
	}

	var list strings.Builder
	list.WriteString("Your upcoming meetings are:\n```\n")
	for _, meeting := range meetings {
		list.WriteString(fmt.Sprintf("%d: %s - %s\n",
			meeting.ID, meeting.ScheduledAt.Format("2006-01-02 15:04 MST"), meeting.Description))
	}
	list.WriteString("```")

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// parseWhen resolves a natural-language time expression against the current
// clock. Expressions that parse into the past are rejected.
func (h *SlackHandler) parseWhen(text string) (time.Time, bool) {
	now := h.clk.Now()

	result, err := h.when.Parse(text, now)
	if err != nil || result == nil {
		return time.Time{}, false
	}
	if !result.Time.After(now) {
		return time.Time{}, false
	}

	return result.Time.UTC(), true
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
