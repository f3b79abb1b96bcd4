package signal

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dkeye/Rendezvous/internal/core"
	"github.com/go-playground/validator/v10"
)

// Inbound event names.
const (
	EventCreateRoom    = "create-room"
	EventJoinRoom      = "join-room"
	EventGetRoomPeers  = "get-room-peers"
	EventLeaveRoom     = "leave-room"
	EventPeerInfo      = "peer-info"
	EventSignal        = "signal"
	EventChatMessage   = "chat-message"
	EventPairJoin      = "webrtc:join"
	EventPairOffer     = "webrtc:offer"
	EventPairAnswer    = "webrtc:answer"
	EventPairCandidate = "webrtc:ice"
	EventPairLeave     = "webrtc:leave"
)

var ErrInvalidPayload = errors.New("invalid payload")

// Envelope is one WebSocket text frame in either direction.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type outEnvelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// Encode turns an outbound event into a wire frame.
func Encode(ev core.Event) (core.Frame, error) {
	b, err := json.Marshal(outEnvelope{Event: ev.Name, Data: ev.Data})
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", ev.Name, err)
	}
	return core.Frame(b), nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func invalidf(event, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidPayload, event, fmt.Sprintf(format, args...))
}

// decode unmarshals raw into v and checks its validate tags.
// A missing payload decodes as null.
func decode(event string, raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		raw = json.RawMessage("null")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return invalidf(event, "%v", err)
	}
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return invalidf(event, "field %s failed %s", verrs[0].Field(), verrs[0].Tag())
		}
		return invalidf(event, "%v", err)
	}
	return nil
}
