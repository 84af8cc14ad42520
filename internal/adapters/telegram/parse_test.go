package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relaybot/internal/domain"
)

func update(text string) *Update {
	return &Update{
		UpdateID: 1,
		Message: &Message{
			MessageID: 10,
			From:      domain.User{ID: 42, FirstName: "Alice"},
			Chat:      Chat{ID: 42},
			Text:      text,
		},
	}
}

func TestToEvent(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantKind domain.EventKind
		wantCmd  string
		wantArgs string
		wantBody string
	}{
		{name: "create with spaces", text: "/create Book Club", wantKind: domain.EventCommand, wantCmd: "create", wantArgs: "Book Club"},
		{name: "join", text: "/join abc123", wantKind: domain.EventCommand, wantCmd: "join", wantArgs: "abc123"},
		{name: "list no args", text: "/list", wantKind: domain.EventCommand, wantCmd: "list"},
		{name: "members", text: "/members general", wantKind: domain.EventCommand, wantCmd: "members", wantArgs: "general"},
		{name: "exit", text: "/exit general", wantKind: domain.EventCommand, wantCmd: "exit", wantArgs: "general"},
		{name: "start", text: "/start", wantKind: domain.EventCommand, wantCmd: "start"},
		{name: "bot suffix", text: "/create@relaybot general", wantKind: domain.EventCommand, wantCmd: "create", wantArgs: "general"},
		{name: "uppercase command", text: "/LIST", wantKind: domain.EventCommand, wantCmd: "list"},
		{name: "plain text", text: "hello there", wantKind: domain.EventText, wantBody: "hello there"},
		{name: "unknown command relays as text", text: "/dance all night", wantKind: domain.EventText, wantBody: "/dance all night"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := ToEvent(update(tt.text))
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, ev.Kind)
			assert.Equal(t, tt.wantCmd, ev.Command)
			assert.Equal(t, tt.wantArgs, ev.Args)
			assert.Equal(t, tt.wantBody, ev.Body)
			assert.EqualValues(t, 42, ev.From.ID)
		})
	}
}

func TestToEvent_Skipped(t *testing.T) {
	_, ok := ToEvent(nil)
	assert.False(t, ok)

	_, ok = ToEvent(&Update{UpdateID: 1})
	assert.False(t, ok)

	_, ok = ToEvent(update(""))
	assert.False(t, ok)
}
