//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mocks/mock_sender.go -package=mocks
package core

import (
	"context"

	"relaybot/internal/domain"
)

// Sender delivers one outbound message to one recipient chat.
// Owned by the transport adapter; the core only produces deliveries.
type Sender interface {
	SendMessage(ctx context.Context, to domain.UserID, text string) error
}

// Delivery is a single send instruction for the transport. Deliveries in a
// batch are independent: a failed one must not abort the others.
type Delivery struct {
	To      domain.UserID
	Payload string
}

// RoomView is what create/join hand back to the caller.
type RoomView struct {
	Name domain.RoomName
	Code domain.JoinCode
}

// RoomSummary is a read-only row for room listings.
type RoomSummary struct {
	Name domain.RoomName
	Code domain.JoinCode
}
