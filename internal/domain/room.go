package domain

type RoomID string

// MaxRoomMembers is the capacity of a primary room.
const MaxRoomMembers = 2

type Room struct {
	ID RoomID
}
