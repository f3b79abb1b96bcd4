package orch

import (
	"encoding/json"

	"github.com/dkeye/Rendezvous/internal/core"
	"github.com/dkeye/Rendezvous/internal/domain"
	"github.com/rs/zerolog/log"
)

// Relay forwards data untouched to the other members of room id.
// Unknown rooms and empty rooms drop it silently.
func (o *Orchestrator) Relay(sid core.SessionID, id domain.RoomID, data json.RawMessage) {
	members := o.Groups.Members(primaryGroup(id))
	log.Debug().Str("module", "orch").Str("sid", string(sid)).Str("room", string(id)).Int("members", len(members)).Msg("relay signal")
	o.emitOthers(members, sid, core.EventSignal, core.SignalRelay{From: domain.PeerID(sid), Data: data})
}

// Chat stamps message with the sender and server time and passes it on.
func (o *Orchestrator) Chat(sid core.SessionID, id domain.RoomID, message string) {
	msg := core.ChatMessage{
		Message:   message,
		From:      domain.PeerID(sid),
		Timestamp: o.now().UnixMilli(),
	}
	o.emitOthers(o.Groups.Members(primaryGroup(id)), sid, core.EventChatMessage, msg)
}
