package orch

import (
	"github.com/dkeye/Rendezvous/internal/core"
	"github.com/dkeye/Rendezvous/internal/domain"
	"github.com/rs/zerolog/log"
)

func (o *Orchestrator) CreateRoom(sid core.SessionID) domain.RoomID {
	room := o.Rooms.CreateRoom(sid)
	id := room.Room().ID
	o.Groups.Join(primaryGroup(id), sid)
	log.Info().Str("module", "orch").Str("sid", string(sid)).Str("room", string(id)).Msg("room created")
	o.emit(sid, core.EventRoomCreated, core.RoomCreated{RoomID: id})
	return id
}

// JoinRoom fails with core.ErrRoomNotFound or core.ErrRoomFull without
// touching any state; the failure is reported to sid as room-error.
// A full room rejects its own members too.
func (o *Orchestrator) JoinRoom(sid core.SessionID, id domain.RoomID) error {
	room, ok := o.Rooms.GetRoom(id)
	if !ok {
		log.Info().Str("module", "orch").Str("sid", string(sid)).Str("room", string(id)).Msg("join: room not found")
		o.emit(sid, core.EventRoomError, core.RoomError{Message: core.MsgRoomNotFound})
		return core.ErrRoomNotFound
	}
	existing := room.Members()
	if len(existing) >= domain.MaxRoomMembers {
		return o.rejectFull(sid, id)
	}
	if err := room.AddMember(sid); err != nil {
		return o.rejectFull(sid, id)
	}
	o.Groups.Join(primaryGroup(id), sid)
	log.Info().Str("module", "orch").Str("sid", string(sid)).Str("room", string(id)).Msg("joined room")

	o.emitOthers(existing, sid, core.EventPeerJoined, core.PeerRef{SocketID: domain.PeerID(sid)})
	for _, other := range existing {
		if other == sid {
			continue
		}
		peer := o.Registry.Peer(other)
		if peer == nil {
			continue
		}
		if name := peer.DisplayNamePtr(); name != nil {
			o.emit(sid, core.EventPeerInfo, core.PeerInfo{SocketID: peer.ID, DisplayName: name})
		}
	}
	o.emit(sid, core.EventRoomJoined, nil)
	o.BroadcastRoster(id)
	return nil
}

func (o *Orchestrator) rejectFull(sid core.SessionID, id domain.RoomID) error {
	log.Info().Str("module", "orch").Str("sid", string(sid)).Str("room", string(id)).Msg("join: room full")
	o.emit(sid, core.EventRoomError, core.RoomError{Message: core.MsgRoomFull})
	return core.ErrRoomFull
}

// LeaveRoom is a no-op unless sid is a member of id.
func (o *Orchestrator) LeaveRoom(sid core.SessionID, id domain.RoomID) {
	room, ok := o.Rooms.GetRoom(id)
	if !ok || !room.Has(sid) {
		return
	}
	o.removeMember(room, sid)
}

// ReconcileDisconnect removes sid from every primary room it belongs to.
func (o *Orchestrator) ReconcileDisconnect(sid core.SessionID) {
	for _, room := range o.Rooms.RoomsOf(sid) {
		o.removeMember(room, sid)
	}
}

func (o *Orchestrator) removeMember(room core.RoomService, sid core.SessionID) {
	id := room.Room().ID
	if !room.RemoveMember(sid) {
		return
	}
	o.Groups.Leave(primaryGroup(id), sid)
	log.Info().Str("module", "orch").Str("sid", string(sid)).Str("room", string(id)).Msg("left room")

	remaining := room.Members()
	o.emitOthers(remaining, sid, core.EventPeerLeft, core.PeerRef{SocketID: domain.PeerID(sid)})
	if len(remaining) > 0 {
		o.BroadcastRoster(id)
		return
	}
	o.Rooms.DeleteIfEmpty(id)
}
