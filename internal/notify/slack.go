package notify

import (
	"encoding/json"
	"fmt"

	"recordar/internal/model"
)

// SlackFormatter formats notifications for Slack incoming webhooks.
type SlackFormatter struct{}

type slackPayload struct {
	Text   string       `json:"text"`
	Blocks []slackBlock `json:"blocks,omitempty"`
}

type slackBlock struct {
	Type string     `json:"type"`
	Text *slackText `json:"text,omitempty"`
}

type slackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Format converts a notification to Slack block kit format.
func (f *SlackFormatter) Format(n *model.Notification) ([]byte, error) {
	body := fmt.Sprintf("*%s*\n%s", n.Title, n.Body)
	for key, value := range n.Fields {
		body += fmt.Sprintf("\n_%s:_ %s", key, value)
	}

	return json.Marshal(slackPayload{
		Text: fmt.Sprintf("%s: %s", n.Title, n.Body),
		Blocks: []slackBlock{
			{
				Type: "section",
				Text: &slackText{Type: "mrkdwn", Text: body},
			},
		},
	})
}

// ContentType returns the payload content type.
func (f *SlackFormatter) ContentType() string {
	return "application/json"
}
