package core

import (
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"relaybot/internal/domain"
)

type roomState struct {
	room    domain.Room
	members map[domain.UserID]struct{}
}

// Registry is the single owner of all room and session state. Webhook
// invocations may run concurrently, so every operation takes the mutex and
// mutates under it; handlers never see a half-applied command.
type Registry struct {
	mu       sync.RWMutex
	rooms    map[domain.RoomName]*roomState
	byCode   map[domain.JoinCode]domain.RoomName
	order    []domain.RoomName
	sessions map[domain.UserID]domain.RoomName

	codeLen int
}

func NewRegistry(codeLen int) *Registry {
	if codeLen <= 0 {
		codeLen = DefaultCodeLength
	}
	return &Registry{
		rooms:    make(map[domain.RoomName]*roomState),
		byCode:   make(map[domain.JoinCode]domain.RoomName),
		sessions: make(map[domain.UserID]domain.RoomName),
		codeLen:  codeLen,
	}
}

// CreateRoom registers a new room with the creator as its only member and
// makes it the creator's active room.
func (r *Registry) CreateRoom(name string, creator domain.UserID) (RoomView, error) {
	trimmed := domain.RoomName(strings.TrimSpace(name))
	if trimmed == "" {
		return RoomView{}, ErrInvalidName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[trimmed]; ok {
		return RoomView{}, ErrDuplicateRoom
	}

	code := r.newCodeLocked()
	r.rooms[trimmed] = &roomState{
		room:    domain.Room{Name: trimmed, Code: code},
		members: map[domain.UserID]struct{}{creator: {}},
	}
	r.byCode[code] = trimmed
	r.order = append(r.order, trimmed)
	r.sessions[creator] = trimmed

	log.Info().Str("module", "core.registry").Str("room", string(trimmed)).Int64("creator", int64(creator)).Msg("room created")
	return RoomView{Name: trimmed, Code: code}, nil
}

// JoinRoom adds the user to the room behind the code and makes it their
// active room. Joining a room twice is a no-op, not an error.
func (r *Registry) JoinRoom(code string, user domain.UserID) (RoomView, error) {
	if strings.TrimSpace(code) == "" {
		return RoomView{}, ErrInvalidCode
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name, ok := r.byCode[domain.JoinCode(code)]
	if !ok {
		return RoomView{}, ErrCodeNotFound
	}
	state := r.rooms[name]
	state.members[user] = struct{}{}
	r.sessions[user] = name

	log.Info().Str("module", "core.registry").Str("room", string(name)).Int64("user", int64(user)).Msg("user joined")
	return RoomView{Name: name, Code: state.room.Code}, nil
}

// ListRooms returns every room in creation order. An empty slice means no
// rooms exist; that is a valid answer, not an error.
func (r *Registry) ListRooms() []RoomSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]RoomSummary, 0, len(r.order))
	for _, name := range r.order {
		state := r.rooms[name]
		out = append(out, RoomSummary{Name: name, Code: state.room.Code})
	}
	return out
}

// ListMembers returns the room's member ids, sorted for stable output.
func (r *Registry) ListMembers(name string) ([]domain.UserID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.rooms[domain.RoomName(name)]
	if !ok {
		return nil, ErrRoomNotFound
	}
	out := make([]domain.UserID, 0, len(state.members))
	for id := range state.members {
		out = append(out, id)
	}
	slices.Sort(out)
	return out, nil
}

// LeaveRoom removes the user from the room and, if that room was the user's
// active one, clears the session pointer. A missing room and a non-member
// both report ErrNotAMember.
func (r *Registry) LeaveRoom(name string, user domain.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.rooms[domain.RoomName(name)]
	if !ok {
		return ErrNotAMember
	}
	if _, member := state.members[user]; !member {
		return ErrNotAMember
	}
	delete(state.members, user)
	if r.sessions[user] == state.room.Name {
		delete(r.sessions, user)
	}

	log.Info().Str("module", "core.registry").Str("room", name).Int64("user", int64(user)).Msg("user left")
	return nil
}
