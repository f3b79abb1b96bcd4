package orch

import (
	"github.com/dkeye/Rendezvous/internal/core"
	"github.com/dkeye/Rendezvous/internal/domain"
	"github.com/rs/zerolog/log"
)

// Roster is the canonical membership snapshot of a room, in join order.
func (o *Orchestrator) Roster(room core.RoomService) []core.RosterEntry {
	members := room.Members()
	out := make([]core.RosterEntry, 0, len(members))
	for _, sid := range members {
		entry := core.RosterEntry{SocketID: domain.PeerID(sid)}
		if peer := o.Registry.Peer(sid); peer != nil {
			entry.DisplayName = peer.DisplayNamePtr()
		}
		out = append(out, entry)
	}
	return out
}

// BroadcastRoster pushes the full snapshot to every member, the cause included.
func (o *Orchestrator) BroadcastRoster(id domain.RoomID) {
	room, ok := o.Rooms.GetRoom(id)
	if !ok {
		return
	}
	roster := core.RoomPeers{Peers: o.Roster(room)}
	for _, sid := range room.Members() {
		o.emit(sid, core.EventRoomPeers, roster)
	}
}

func (o *Orchestrator) GetRoster(sid core.SessionID, id domain.RoomID) error {
	room, ok := o.Rooms.GetRoom(id)
	if !ok {
		o.emit(sid, core.EventRoomError, core.RoomError{Message: core.MsgRoomNotFound})
		return core.ErrRoomNotFound
	}
	o.emit(sid, core.EventRoomPeers, core.RoomPeers{Peers: o.Roster(room)})
	return nil
}

// AnnounceDisplayName stores name and fans it out to the peer's rooms.
// A nil name clears it, so rosters show null again.
func (o *Orchestrator) AnnounceDisplayName(sid core.SessionID, name *string) {
	peer := o.Registry.Peer(sid)
	if peer == nil {
		return
	}
	if name == nil {
		peer.ClearDisplayName()
		log.Info().Str("module", "orch").Str("sid", string(sid)).Msg("display name cleared")
	} else {
		peer.SetDisplayName(*name)
		log.Info().Str("module", "orch").Str("sid", string(sid)).Str("display_name", *name).Msg("display name set")
	}

	info := core.PeerInfo{SocketID: peer.ID, DisplayName: peer.DisplayNamePtr()}
	for _, room := range o.Rooms.RoomsOf(sid) {
		o.emitOthers(room.Members(), sid, core.EventPeerInfo, info)
	}
}
