package app

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"relaybot/internal/core"
	"relaybot/internal/domain"
)

// Router turns a plain text message into the set of deliveries for the
// sender's active room.
type Router struct {
	Registry *core.Registry
}

// RouteText fans the text out to every member of the sender's active room
// except the sender. A user with no active room, or whose active room no
// longer exists, gets an empty batch: the message is dropped, not erred.
func (r *Router) RouteText(sender domain.User, text string) []core.Delivery {
	roomName, ok := r.Registry.GetActiveRoom(sender.ID)
	if !ok {
		log.Debug().Str("module", "app.router").Int64("sender", int64(sender.ID)).Msg("no active room, dropping text")
		return nil
	}
	members, err := r.Registry.ListMembers(string(roomName))
	if err != nil {
		log.Warn().Str("module", "app.router").Str("room", string(roomName)).Msg("stale session, dropping text")
		return nil
	}

	payload := fmt.Sprintf("[%s] %s: %s", roomName, sender.DisplayName(), text)
	out := make([]core.Delivery, 0, len(members))
	for _, id := range members {
		if id == sender.ID {
			continue
		}
		out = append(out, core.Delivery{To: id, Payload: payload})
	}
	log.Debug().Str("module", "app.router").Str("room", string(roomName)).Int("recipients", len(out)).Msg("text routed")
	return out
}
