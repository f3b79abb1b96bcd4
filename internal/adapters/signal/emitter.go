package signal

import (
	"github.com/dkeye/Rendezvous/internal/app"
	"github.com/dkeye/Rendezvous/internal/core"
	"github.com/rs/zerolog/log"
)

// Emitter encodes events and queues them on the target's connection.
type Emitter struct {
	Registry *app.Registry
}

func NewEmitter(reg *app.Registry) *Emitter {
	return &Emitter{Registry: reg}
}

func (e *Emitter) Emit(to core.SessionID, ev core.Event) {
	sess, ok := e.Registry.GetSession(to)
	if !ok {
		log.Debug().Str("module", "signal").Str("sid", string(to)).Str("event", ev.Name).Msg("emit: no session")
		return
	}
	frame, err := Encode(ev)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Str("event", ev.Name).Msg("emit: encode")
		return
	}
	if err := sess.Signal().TrySend(frame); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(to)).Str("event", ev.Name).Msg("emit: frame dropped")
	}
}
