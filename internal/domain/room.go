package domain

type (
	RoomName string
	JoinCode string
)

// Room is the identity of a chat room. Membership lives in the registry,
// not here.
type Room struct {
	Name RoomName
	Code JoinCode
}
