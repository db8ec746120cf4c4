package slack

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/OfficialHisha/MeetBot/internal/domain"
)

type CommandType string

const (
	CmdSetup      CommandType = "setup"
	CmdCancel     CommandType = "cancel"
	CmdReschedule CommandType = "reschedule"
	CmdList       CommandType = "list"
	CmdHelp       CommandType = "help"
)

var (
	// Slack escapes mentions as <@U123> / <@U123|name> for users and
	// <!subteam^S123> / <!subteam^S123|name> for user groups.
	mentionRe = regexp.MustCompile(`<@(U[A-Z0-9]+)(?:\|[^>]*)?>|<!subteam\^(S[A-Z0-9]+)(?:\|[^>]*)?>`)
	titleRe   = regexp.MustCompile(`"([^"]*)"|'([^']*)'`)
)

type Command struct {
	Type     CommandType
	Title    string
	When     string
	Mentions []string
	ID       int64
	Raw      string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), parts[0]))

	switch parts[0] {
	case "setup":
		cmd.Type = CmdSetup
		parseSetupArgs(cmd, rest)
		if len(cmd.Mentions) == 0 {
			return nil, fmt.Errorf("no participants mentioned, mention the users or groups the meeting is for")
		}
		if cmd.When == "" {
			return nil, fmt.Errorf("no meeting time given")
		}
	case "cancel", "rm":
		cmd.Type = CmdCancel
		id, err := parseID(rest)
		if err != nil {
			return nil, fmt.Errorf("invalid ID, syntax: cancel <id>")
		}
		cmd.ID = id
	case "reschedule", "move":
		cmd.Type = CmdReschedule
		fields := strings.Fields(rest)
		if len(fields) < 2 {
			return nil, fmt.Errorf("syntax: reschedule <id> <time>")
		}
		id, err := parseID(fields[0])
		if err != nil {
			return nil, fmt.Errorf("invalid ID, syntax: reschedule <id> <time>")
		}
		cmd.ID = id
		cmd.When = strings.Join(fields[1:], " ")
	case "list", "ls", "meetings":
		cmd.Type = CmdList
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// parseSetupArgs splits `["title"] <time> <@mentions>` into its pieces: the
// optional quoted title and the mentions are cut out, whatever remains is the
// time expression.
func parseSetupArgs(cmd *Command, text string) {
	cmd.Title = domain.DefaultMeetingTitle
	if match := titleRe.FindStringSubmatch(text); match != nil {
		if match[1] != "" {
			cmd.Title = match[1]
		} else if match[2] != "" {
			cmd.Title = match[2]
		}
		text = titleRe.ReplaceAllString(text, " ")
	}

	for _, match := range mentionRe.FindAllStringSubmatch(text, -1) {
		if match[1] != "" {
			cmd.Mentions = append(cmd.Mentions, match[1])
		} else if match[2] != "" {
			cmd.Mentions = append(cmd.Mentions, match[2])
		}
	}
	text = mentionRe.ReplaceAllString(text, " ")

	cmd.When = strings.Join(strings.Fields(text), " ")
}

func parseID(text string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(text), 10, 64)
}

func GetHelpText() string {
	return `*Available commands:*

*Meetings:*
• ` + "`/meetbot setup [\"title\"] <time> <@attendees>`" + ` - Sets up a meeting for the mentioned attendees (example: ` + "`/meetbot setup \"sprint review\" friday at 2pm @alice @bob`" + `)
• ` + "`/meetbot cancel <id>`" + ` - Cancels the meeting with the given id
• ` + "`/meetbot reschedule <id> <time>`" + ` - Moves a meeting to a new time (reminders start over)
• ` + "`/meetbot list`" + ` - Shows the meetings you are assigned to

*Other:*
• ` + "`/meetbot help`" + ` - Shows this message`
}
