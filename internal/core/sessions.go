package core

import (
	"github.com/rs/zerolog/log"

	"relaybot/internal/domain"
)

// Session state: each user points at most one room that their plain text
// messages relay through. Create/join set the pointer themselves (under the
// same lock as the membership change); these methods cover the rest of the
// lifecycle.

// SetActiveRoom overwrites the user's active room.
func (r *Registry) SetActiveRoom(user domain.UserID, name domain.RoomName) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[user] = name
	log.Info().Str("module", "core.sessions").Int64("user", int64(user)).Str("room", string(name)).Msg("active room set")
}

// GetActiveRoom reports the room the user is currently chatting in, if any.
func (r *Registry) GetActiveRoom(user domain.UserID) (domain.RoomName, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.sessions[user]
	return name, ok
}

// ClearActiveRoom is a no-op when the user has no active room.
func (r *Registry) ClearActiveRoom(user domain.UserID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, user)
}
