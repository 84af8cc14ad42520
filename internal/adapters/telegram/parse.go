package telegram

import (
	"strings"

	"relaybot/internal/domain"
)

// Commands the bot registers. Anything else, slash-prefixed or not, flows
// through the plain text path the way an unregistered command would.
var knownCommands = map[string]struct{}{
	"start":   {},
	"create":  {},
	"join":    {},
	"list":    {},
	"members": {},
	"exit":    {},
}

// ToEvent decodes one update into a command or text event. Updates without
// a text message (edits, joins, stickers) are skipped.
func ToEvent(upd *Update) (domain.Event, bool) {
	if upd == nil || upd.Message == nil || upd.Message.Text == "" {
		return domain.Event{}, false
	}
	msg := upd.Message

	if !strings.HasPrefix(msg.Text, "/") {
		return domain.NewTextEvent(msg.From, msg.Text), true
	}

	head, args, _ := strings.Cut(msg.Text[1:], " ")
	// Group chats address commands as /cmd@botname.
	name, _, _ := strings.Cut(head, "@")
	name = strings.ToLower(name)
	if _, ok := knownCommands[name]; !ok {
		return domain.NewTextEvent(msg.From, msg.Text), true
	}
	return domain.NewCommandEvent(msg.From, name, strings.TrimSpace(args)), true
}
