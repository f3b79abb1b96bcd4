package orch

import (
	"encoding/json"

	"github.com/dkeye/Rendezvous/internal/app"
	"github.com/dkeye/Rendezvous/internal/core"
	"github.com/rs/zerolog/log"
)

// JoinPairing adds sid to the pairing group and assigns roles from the
// resulting occupancy alone.
func (o *Orchestrator) JoinPairing(sid core.SessionID, name string) app.PairingAction {
	group := pairingGroup(name)
	o.Groups.Join(group, sid)
	members := o.Groups.Members(group)
	action := o.Policy.OnJoin(len(members))
	log.Info().Str("module", "orch").Str("sid", string(sid)).Str("pairing", name).Int("occupancy", len(members)).Str("action", action.String()).Msg("pairing join")

	switch action {
	case app.AssignInitiator:
		o.Registry.AddPairing(sid, name)
		o.emit(sid, core.EventRole, core.Role{IsOfferer: true})
	case app.CompletePair:
		o.Registry.AddPairing(sid, name)
		o.emitOthers(members, sid, core.EventRole, core.Role{IsOfferer: true})
		o.emit(sid, core.EventRole, core.Role{IsOfferer: false})
		for _, member := range members {
			o.emit(member, core.EventPeerReady, nil)
		}
	case app.RejectFull:
		o.Groups.Leave(group, sid)
		o.emit(sid, core.EventRoomFull, nil)
	}
	return action
}

func (o *Orchestrator) RelayOffer(sid core.SessionID, name string, sdp json.RawMessage) {
	o.relayPairing(sid, name, core.EventOffer, core.SDP{SDP: sdp})
}

func (o *Orchestrator) RelayAnswer(sid core.SessionID, name string, sdp json.RawMessage) {
	o.relayPairing(sid, name, core.EventAnswer, core.SDP{SDP: sdp})
}

func (o *Orchestrator) RelayCandidate(sid core.SessionID, name string, candidate json.RawMessage) {
	o.relayPairing(sid, name, core.EventCandidate, core.Candidate{Candidate: candidate})
}

func (o *Orchestrator) relayPairing(sid core.SessionID, name, event string, data any) {
	members := o.Groups.Members(pairingGroup(name))
	log.Debug().Str("module", "orch").Str("sid", string(sid)).Str("pairing", name).Str("event", event).Msg("relay pairing")
	o.emitOthers(members, sid, event, data)
}

// LeavePairing drops sid and tells whoever remains. Roles are not reassigned.
func (o *Orchestrator) LeavePairing(sid core.SessionID, name string) {
	group := pairingGroup(name)
	o.Groups.Leave(group, sid)
	o.Registry.RemovePairing(sid, name)
	log.Info().Str("module", "orch").Str("sid", string(sid)).Str("pairing", name).Msg("pairing leave")
	o.emitOthers(o.Groups.Members(group), sid, core.EventPairPeerLeft, nil)
}
