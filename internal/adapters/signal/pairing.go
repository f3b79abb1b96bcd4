package signal

import (
	"encoding/json"

	"github.com/dkeye/Rendezvous/internal/core"
)

// webrtc:join carries the room name as a bare JSON string.
func (ctl *SignalWSController) handlePairJoin(sid core.SessionID, data json.RawMessage) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return invalidf(EventPairJoin, "room name must be a string")
	}
	if err := validate.Var(name, "required"); err != nil {
		return invalidf(EventPairJoin, "room name required")
	}
	ctl.Orch.JoinPairing(sid, name)
	return nil
}

func (ctl *SignalWSController) handlePairSDP(sid core.SessionID, event string, data json.RawMessage) error {
	var p sdpPayload
	if err := decode(event, data, &p); err != nil {
		return err
	}
	if event == EventPairOffer {
		ctl.Orch.RelayOffer(sid, p.RoomID, p.SDP)
	} else {
		ctl.Orch.RelayAnswer(sid, p.RoomID, p.SDP)
	}
	return nil
}

func (ctl *SignalWSController) handlePairCandidate(sid core.SessionID, data json.RawMessage) error {
	var p candidatePayload
	if err := decode(EventPairCandidate, data, &p); err != nil {
		return err
	}
	ctl.Orch.RelayCandidate(sid, p.RoomID, p.Candidate)
	return nil
}

func (ctl *SignalWSController) handlePairLeave(sid core.SessionID, data json.RawMessage) error {
	var p roomPayload
	if err := decode(EventPairLeave, data, &p); err != nil {
		return err
	}
	ctl.Orch.LeavePairing(sid, p.RoomID)
	return nil
}
