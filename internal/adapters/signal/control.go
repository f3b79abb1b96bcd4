package signal

import (
	"github.com/dkeye/Rendezvous/internal/core"
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) reportInvalid(sid core.SessionID, event string, err error) {
	log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Str("event", event).Msg("bad payload")
	ctl.Orch.Emitter.Emit(sid, core.Event{
		Name: core.EventInvalidPayload,
		Data: core.InvalidPayload{Event: event, Message: err.Error()},
	})
}
