package orch

import (
	"time"

	"github.com/dkeye/Rendezvous/internal/app"
	"github.com/dkeye/Rendezvous/internal/core"
	"github.com/dkeye/Rendezvous/internal/domain"
	"github.com/rs/zerolog/log"
)

// Orchestrator applies room transitions and emits their notifications.
// Every method must run on the Dispatcher goroutine.
type Orchestrator struct {
	Registry *app.Registry
	Rooms    core.RoomManager
	Groups   core.GroupTransport
	Policy   app.PairingPolicy
	Emitter  core.Emitter
	Now      func() time.Time
}

// Primary rooms and pairing rooms share one group transport but never a
// group: the prefixes keep the two namespaces apart.
func primaryGroup(id domain.RoomID) string { return "room/" + string(id) }
func pairingGroup(name string) string      { return "pair/" + name }

func (o *Orchestrator) emit(to core.SessionID, name string, data any) {
	o.Emitter.Emit(to, core.Event{Name: name, Data: data})
}

// emitOthers sends to every sid in members except from.
func (o *Orchestrator) emitOthers(members []core.SessionID, from core.SessionID, name string, data any) {
	for _, sid := range members {
		if sid == from {
			continue
		}
		o.emit(sid, name, data)
	}
}

func (o *Orchestrator) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// Shutdown cancels every live session and drops all primary rooms.
// Disconnects that arrive afterwards find nothing to reconcile.
func (o *Orchestrator) Shutdown() {
	sessions := o.Registry.Count()
	o.Registry.CancelAll()
	o.Rooms.Reset()
	log.Info().Str("module", "orch").Int("sessions", sessions).Msg("orchestrator shut down")
}

// OnDisconnect runs once per connection loss. Pairing groups are dropped by
// the transport without notifying the remaining peer.
func (o *Orchestrator) OnDisconnect(sid core.SessionID) {
	o.ReconcileDisconnect(sid)
	o.Groups.LeaveAll(sid)
	o.Registry.Unbind(sid)
}
