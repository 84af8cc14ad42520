package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"relaybot/internal/core"
	"relaybot/internal/domain"
)

const welcome = "Welcome to the Chat Room Bot!\n\n" +
	"Commands:\n" +
	"/create <room_name> - Create a chat room\n" +
	"/join <join_code> - Join a room using its unique code\n" +
	"/list - List all rooms\n" +
	"/members <room_name> - List members of a room\n" +
	"/exit <room_name> - Leave a room"

// Orchestrator maps one inbound event to a reply for the invoker plus the
// relay deliveries, if any. It holds no state of its own.
type Orchestrator struct {
	Registry *core.Registry
	Router   *Router
}

// Result is everything the transport has to send for one event. An empty
// Reply means the invoker gets no answer (plain text relays are silent).
type Result struct {
	Reply      string
	Deliveries []core.Delivery
}

func (o *Orchestrator) Handle(ev domain.Event) Result {
	if ev.Kind == domain.EventText {
		return Result{Deliveries: o.Router.RouteText(ev.From, ev.Body)}
	}

	switch ev.Command {
	case "start":
		return Result{Reply: welcome}
	case "create":
		return Result{Reply: o.create(ev.Args, ev.From.ID)}
	case "join":
		return Result{Reply: o.join(ev.Args, ev.From.ID)}
	case "list":
		return Result{Reply: o.list()}
	case "members":
		return Result{Reply: o.members(ev.Args)}
	case "exit":
		return Result{Reply: o.exit(ev.Args, ev.From.ID)}
	}

	log.Warn().Str("module", "app.orchestrator").Str("command", ev.Command).Msg("unroutable command")
	return Result{}
}

func (o *Orchestrator) create(name string, creator domain.UserID) string {
	view, err := o.Registry.CreateRoom(name, creator)
	switch {
	case errors.Is(err, core.ErrInvalidName):
		return "Please provide a room name. Usage: /create <room_name>"
	case errors.Is(err, core.ErrDuplicateRoom):
		return fmt.Sprintf("Room '%s' already exists.", strings.TrimSpace(name))
	}
	return fmt.Sprintf("Room '%s' created successfully! Join using the code: %s\n\nUse /join %s to join it.",
		view.Name, view.Code, view.Code)
}

func (o *Orchestrator) join(args string, user domain.UserID) string {
	// Only the first token counts as the code; trailing words are noise.
	code, _, _ := strings.Cut(strings.TrimSpace(args), " ")
	view, err := o.Registry.JoinRoom(code, user)
	switch {
	case errors.Is(err, core.ErrInvalidCode):
		return "Please provide a join code. Usage: /join <join_code>"
	case errors.Is(err, core.ErrCodeNotFound):
		return "Invalid join code."
	}
	return fmt.Sprintf("You joined the room '%s'.", view.Name)
}

func (o *Orchestrator) list() string {
	rooms := o.Registry.ListRooms()
	if len(rooms) == 0 {
		return "No rooms available."
	}
	lines := lo.Map(rooms, func(r core.RoomSummary, _ int) string {
		return fmt.Sprintf("%s (Code: %s)", r.Name, r.Code)
	})
	return strings.Join(lines, "\n")
}

func (o *Orchestrator) members(name string) string {
	ids, err := o.Registry.ListMembers(strings.TrimSpace(name))
	if err != nil {
		return "Invalid room name or room does not exist."
	}
	if len(ids) == 0 {
		return "No members in this room."
	}
	lines := lo.Map(ids, func(id domain.UserID, _ int) string {
		return fmt.Sprintf("User ID: %d", id)
	})
	return strings.Join(lines, "\n")
}

func (o *Orchestrator) exit(name string, user domain.UserID) string {
	trimmed := strings.TrimSpace(name)
	if err := o.Registry.LeaveRoom(trimmed, user); err != nil {
		return "You are not a member of this room or the room does not exist."
	}
	return fmt.Sprintf("You have left the room '%s'.", trimmed)
}
