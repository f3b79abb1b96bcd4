package signal

import "encoding/json"

type roomPayload struct {
	RoomID string `json:"roomId" validate:"required"`
}

// leave-room without roomId is a no-op, not an error.
type leavePayload struct {
	RoomID string `json:"roomId"`
}

// displayName absent or null clears the announced name.
type peerInfoPayload struct {
	DisplayName *string `json:"displayName"`
}

type signalPayload struct {
	RoomID string          `json:"roomId"`
	Data   json.RawMessage `json:"data"`
}

type chatPayload struct {
	RoomID  string `json:"roomId"`
	Message string `json:"message"`
}

type sdpPayload struct {
	RoomID string          `json:"roomId" validate:"required"`
	SDP    json.RawMessage `json:"sdp"`
}

type candidatePayload struct {
	RoomID    string          `json:"roomId" validate:"required"`
	Candidate json.RawMessage `json:"candidate"`
}
