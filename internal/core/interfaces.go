package core

import (
	"errors"

	"github.com/dkeye/Rendezvous/internal/domain"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room full")
)

// Frame is a raw encoded payload ready for the wire.
type Frame []byte

type SessionID string

// SignalConnection abstracts for a system messaging transport
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}

// Event is one named outbound notification. Data is encoded by the adapter.
type Event struct {
	Name string
	Data any
}

//go:generate mockgen -destination=coremock/emitter.go -package=coremock . Emitter

// Emitter delivers events to a single session. Delivery is best effort:
// failures are the adapter's to log, never the caller's to handle.
type Emitter interface {
	Emit(to SessionID, ev Event)
}

// GroupTransport is the transport-native broadcast group substrate.
// Members are returned in join order.
type GroupTransport interface {
	Join(group string, sid SessionID)
	Leave(group string, sid SessionID)
	LeaveAll(sid SessionID)
	Members(group string) []SessionID
}

// RosterEntry is a read-only view for APIs (no transport fields).
type RosterEntry struct {
	SocketID    domain.PeerID `json:"socketId"`
	DisplayName *string       `json:"displayName"`
}

// RoomService is the core-facing API of a primary room.
// It owns the membership set but never touches transport resources.
type RoomService interface {
	Room() *domain.Room
	MemberCount() int
	Members() []SessionID
	Has(sid SessionID) bool

	AddMember(sid SessionID) error
	RemoveMember(sid SessionID) bool
}

type RoomInfo struct {
	ID          domain.RoomID `json:"roomId"`
	MemberCount int           `json:"memberCount"`
}

// RoomManager is the registry of primary rooms.
type RoomManager interface {
	CreateRoom(owner SessionID) RoomService
	GetRoom(id domain.RoomID) (RoomService, bool)
	DeleteIfEmpty(id domain.RoomID) bool
	RoomsOf(sid SessionID) []RoomService
	List() []RoomInfo
	Reset()
}
