package notify

import (
	"encoding/json"
	"strings"

	"recordar/internal/model"
)

// Webhook target types.
const (
	TypeDiscord = "discord"
	TypeSlack   = "slack"
	TypeGeneric = "generic"
)

// Formatter converts a notification into a webhook payload.
type Formatter interface {
	Format(n *model.Notification) ([]byte, error)
	ContentType() string
}

// FormatterFor returns the formatter for a target type. Unknown types get
// the generic JSON formatter.
func FormatterFor(targetType, template string) Formatter {
	switch targetType {
	case TypeDiscord:
		return &DiscordFormatter{}
	case TypeSlack:
		return &SlackFormatter{}
	default:
		return &GenericFormatter{Template: template}
	}
}

// GenericFormatter emits a plain JSON payload, or substitutes the
// notification into a user-supplied template with {{title}}, {{body}},
// and {{at}} placeholders.
type GenericFormatter struct {
	Template string
}

type genericPayload struct {
	Title  string            `json:"title"`
	Body   string            `json:"body"`
	At     string            `json:"at"`
	Sound  string            `json:"sound,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Format converts a notification to the generic JSON shape.
func (f *GenericFormatter) Format(n *model.Notification) ([]byte, error) {
	if f.Template != "" {
		out := f.Template
		out = strings.ReplaceAll(out, "{{title}}", n.Title)
		out = strings.ReplaceAll(out, "{{body}}", n.Body)
		out = strings.ReplaceAll(out, "{{at}}", n.At.Format("2006-01-02 15:04"))
		return []byte(out), nil
	}

	return json.Marshal(genericPayload{
		Title:  n.Title,
		Body:   n.Body,
		At:     n.At.Format("2006-01-02T15:04:05Z07:00"),
		Sound:  n.Sound,
		Fields: n.Fields,
	})
}

// ContentType returns the payload content type.
func (f *GenericFormatter) ContentType() string {
	return "application/json"
}
