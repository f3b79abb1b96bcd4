package signal

import (
	"encoding/json"

	"github.com/dkeye/Rendezvous/internal/core"
	"github.com/dkeye/Rendezvous/internal/domain"
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) handleRelay(sid core.SessionID, data json.RawMessage) error {
	var p signalPayload
	if err := decode(EventSignal, data, &p); err != nil {
		return err
	}
	ctl.Orch.Relay(sid, domain.RoomID(p.RoomID), p.Data)
	return nil
}

// Chat with a missing room or message is dropped without a reply.
func (ctl *SignalWSController) handleChat(sid core.SessionID, data json.RawMessage) {
	var p chatPayload
	if err := json.Unmarshal(data, &p); err != nil || p.RoomID == "" || p.Message == "" {
		log.Debug().Str("module", "signal").Str("sid", string(sid)).Msg("chat dropped")
		return
	}
	ctl.Orch.Chat(sid, domain.RoomID(p.RoomID), p.Message)
}
