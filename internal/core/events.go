package core

import (
	"encoding/json"

	"github.com/dkeye/Rendezvous/internal/domain"
)

// Outbound event names.
const (
	EventRoomCreated    = "room-created"
	EventRoomError      = "room-error"
	EventRoomJoined     = "room-joined"
	EventPeerJoined     = "peer-joined"
	EventPeerLeft       = "peer-left"
	EventPeerInfo       = "peer-info"
	EventRoomPeers      = "room-peers"
	EventSignal         = "signal"
	EventChatMessage    = "chat-message"
	EventRole           = "webrtc:role"
	EventPeerReady      = "webrtc:peer-ready"
	EventOffer          = "webrtc:offer"
	EventAnswer         = "webrtc:answer"
	EventCandidate      = "webrtc:ice"
	EventPairPeerLeft   = "webrtc:peer-left"
	EventRoomFull       = "room-full"
	EventInvalidPayload = "invalid-payload"
)

// Human-readable room-error messages.
const (
	MsgRoomNotFound = "Room not found"
	MsgRoomFull     = "Room full"
)

type RoomCreated struct {
	RoomID domain.RoomID `json:"roomId"`
}

type RoomError struct {
	Message string `json:"message"`
}

type PeerRef struct {
	SocketID domain.PeerID `json:"socketId"`
}

type PeerInfo struct {
	SocketID    domain.PeerID `json:"socketId"`
	DisplayName *string       `json:"displayName"`
}

type RoomPeers struct {
	Peers []RosterEntry `json:"peers"`
}

type SignalRelay struct {
	From domain.PeerID   `json:"from"`
	Data json.RawMessage `json:"data"`
}

type ChatMessage struct {
	Message   string        `json:"message"`
	From      domain.PeerID `json:"from"`
	Timestamp int64         `json:"timestamp"`
}

type Role struct {
	IsOfferer bool `json:"isOfferer"`
}

type SDP struct {
	SDP json.RawMessage `json:"sdp"`
}

type Candidate struct {
	Candidate json.RawMessage `json:"candidate"`
}

type InvalidPayload struct {
	Event   string `json:"event"`
	Message string `json:"message"`
}
