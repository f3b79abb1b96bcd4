package signal

import (
	"encoding/json"

	"github.com/dkeye/Rendezvous/internal/core"
	"github.com/dkeye/Rendezvous/internal/domain"
)

func (ctl *SignalWSController) handleCreate(sid core.SessionID) {
	ctl.Orch.CreateRoom(sid)
}

// Room errors are already reported to the peer by the orchestrator.
func (ctl *SignalWSController) handleJoin(sid core.SessionID, data json.RawMessage) error {
	var p roomPayload
	if err := decode(EventJoinRoom, data, &p); err != nil {
		return err
	}
	return ctl.Orch.JoinRoom(sid, domain.RoomID(p.RoomID))
}

func (ctl *SignalWSController) handleGetPeers(sid core.SessionID, data json.RawMessage) error {
	var p roomPayload
	if err := decode(EventGetRoomPeers, data, &p); err != nil {
		return err
	}
	return ctl.Orch.GetRoster(sid, domain.RoomID(p.RoomID))
}

func (ctl *SignalWSController) handleLeave(sid core.SessionID, data json.RawMessage) error {
	var p leavePayload
	if err := decode(EventLeaveRoom, data, &p); err != nil {
		return err
	}
	if p.RoomID == "" {
		return nil
	}
	ctl.Orch.LeaveRoom(sid, domain.RoomID(p.RoomID))
	return nil
}
