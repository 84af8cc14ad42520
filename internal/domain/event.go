package domain

type EventKind int

const (
	EventCommand EventKind = iota
	EventText
)

// Event is an inbound update after transport decoding: either a slash
// command with its raw argument string, or a plain text body.
type Event struct {
	Kind EventKind
	From User

	Command string
	Args    string

	Body string
}

func NewCommandEvent(from User, command, args string) Event {
	return Event{Kind: EventCommand, From: from, Command: command, Args: args}
}

func NewTextEvent(from User, body string) Event {
	return Event{Kind: EventText, From: from, Body: body}
}
