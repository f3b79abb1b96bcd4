package orch

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dkeye/Rendezvous/internal/core"
	"github.com/dkeye/Rendezvous/internal/core/coremock"
	"github.com/dkeye/Rendezvous/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestCreateAndJoinRoom(t *testing.T) {
	t.Parallel()
	o, rec := newTestOrch(t, []domain.RoomID{"ab12cd34"}, "p1", "p2")

	if id := o.CreateRoom("p1"); id != "ab12cd34" {
		t.Fatalf("CreateRoom: got %q, want ab12cd34", id)
	}
	assertEvents(t, "p1", rec.to("p1"), []core.Event{
		{Name: core.EventRoomCreated, Data: core.RoomCreated{RoomID: "ab12cd34"}},
	})
	rec.reset()

	if err := o.JoinRoom("p2", "ab12cd34"); err != nil {
		t.Fatalf("JoinRoom: %v", err)
	}
	want := roster(entry("p1"), entry("p2"))
	assertEvents(t, "p1", rec.to("p1"), []core.Event{
		{Name: core.EventPeerJoined, Data: core.PeerRef{SocketID: "p2"}},
		want,
	})
	assertEvents(t, "p2", rec.to("p2"), []core.Event{
		{Name: core.EventRoomJoined},
		want,
	})
}

func TestJoinFullRoom(t *testing.T) {
	t.Parallel()
	o, rec := newTestOrch(t, []domain.RoomID{"ab12cd34"}, "p1", "p2", "p3")
	o.CreateRoom("p1")
	_ = o.JoinRoom("p2", "ab12cd34")
	rec.reset()

	err := o.JoinRoom("p3", "ab12cd34")
	if !errors.Is(err, core.ErrRoomFull) {
		t.Fatalf("JoinRoom(p3): got %v, want ErrRoomFull", err)
	}
	assertEvents(t, "p3", rec.to("p3"), []core.Event{
		{Name: core.EventRoomError, Data: core.RoomError{Message: "Room full"}},
	})
	if len(rec.to("p1")) != 0 || len(rec.to("p2")) != 0 {
		t.Errorf("members notified of rejected join: %+v", rec.sent)
	}
	room, _ := o.Rooms.GetRoom("ab12cd34")
	if got := room.Members(); !reflect.DeepEqual(got, []core.SessionID{"p1", "p2"}) {
		t.Errorf("members: got %v, want [p1 p2]", got)
	}
}

func TestRejoinFullRoomAsMember(t *testing.T) {
	t.Parallel()
	o, rec := newTestOrch(t, []domain.RoomID{"r1"}, "p1", "p2")
	o.CreateRoom("p1")
	_ = o.JoinRoom("p2", "r1")
	rec.reset()

	if err := o.JoinRoom("p2", "r1"); !errors.Is(err, core.ErrRoomFull) {
		t.Fatalf("JoinRoom(p2 again): got %v, want ErrRoomFull", err)
	}
	assertEvents(t, "p2", rec.to("p2"), []core.Event{
		{Name: core.EventRoomError, Data: core.RoomError{Message: "Room full"}},
	})
	if len(rec.to("p1")) != 0 {
		t.Errorf("other member notified: %v", rec.names("p1"))
	}
	room, _ := o.Rooms.GetRoom("r1")
	if got := room.Members(); !reflect.DeepEqual(got, []core.SessionID{"p1", "p2"}) {
		t.Errorf("members: got %v, want [p1 p2]", got)
	}
}

func TestRejoinOwnRoomAlone(t *testing.T) {
	t.Parallel()
	o, rec := newTestOrch(t, []domain.RoomID{"r1"}, "p1")
	o.CreateRoom("p1")
	rec.reset()

	if err := o.JoinRoom("p1", "r1"); err != nil {
		t.Fatalf("JoinRoom(owner): %v", err)
	}
	assertEvents(t, "p1", rec.to("p1"), []core.Event{
		{Name: core.EventRoomJoined},
		roster(entry("p1")),
	})
	room, _ := o.Rooms.GetRoom("r1")
	if room.MemberCount() != 1 {
		t.Errorf("MemberCount: got %d, want 1", room.MemberCount())
	}
}

func TestJoinMissingRoom(t *testing.T) {
	t.Parallel()
	o, rec := newTestOrch(t, []domain.RoomID{"r1"}, "p1")

	err := o.JoinRoom("p1", "nope")
	if !errors.Is(err, core.ErrRoomNotFound) {
		t.Fatalf("JoinRoom: got %v, want ErrRoomNotFound", err)
	}
	assertEvents(t, "p1", rec.to("p1"), []core.Event{
		{Name: core.EventRoomError, Data: core.RoomError{Message: "Room not found"}},
	})
	if rooms := o.Rooms.List(); len(rooms) != 0 {
		t.Errorf("registry mutated: %v", rooms)
	}
}

func TestJoinSendsKnownDisplayNames(t *testing.T) {
	t.Parallel()
	o, rec := newTestOrch(t, []domain.RoomID{"r1"}, "p1", "p2")
	o.CreateRoom("p1")
	o.AnnounceDisplayName("p1", str("alice"))
	rec.reset()

	_ = o.JoinRoom("p2", "r1")
	assertEvents(t, "p2", rec.to("p2"), []core.Event{
		{Name: core.EventPeerInfo, Data: core.PeerInfo{SocketID: "p1", DisplayName: str("alice")}},
		{Name: core.EventRoomJoined},
		roster(entry("p1", "alice"), entry("p2")),
	})
}

func TestLeaveRoom(t *testing.T) {
	t.Parallel()
	o, rec := newTestOrch(t, []domain.RoomID{"r1"}, "p1", "p2")
	o.CreateRoom("p1")
	_ = o.JoinRoom("p2", "r1")
	rec.reset()

	o.LeaveRoom("p2", "r1")
	assertEvents(t, "p1", rec.to("p1"), []core.Event{
		{Name: core.EventPeerLeft, Data: core.PeerRef{SocketID: "p2"}},
		roster(entry("p1")),
	})
	if len(rec.to("p2")) != 0 {
		t.Errorf("leaver got events: %v", rec.names("p2"))
	}
	if o.Groups.Members(primaryGroup("r1"))[0] != "p1" {
		t.Error("leaver still in broadcast group")
	}
	rec.reset()

	o.LeaveRoom("p2", "r1")
	o.LeaveRoom("p2", "missing")
	if len(rec.sent) != 0 {
		t.Errorf("no-op leave emitted: %+v", rec.sent)
	}

	o.LeaveRoom("p1", "r1")
	if _, ok := o.Rooms.GetRoom("r1"); ok {
		t.Error("empty room still registered")
	}
	if len(rec.sent) != 0 {
		t.Errorf("last leave emitted: %+v", rec.sent)
	}
}

func TestReconcileDisconnect(t *testing.T) {
	t.Parallel()
	o, rec := newTestOrch(t, []domain.RoomID{"r1", "r2"}, "p1", "p2")
	o.CreateRoom("p1")
	o.CreateRoom("p1")
	_ = o.JoinRoom("p2", "r1")
	rec.reset()

	o.ReconcileDisconnect("p1")

	assertEvents(t, "p2", rec.to("p2"), []core.Event{
		{Name: core.EventPeerLeft, Data: core.PeerRef{SocketID: "p1"}},
		roster(entry("p2")),
	})
	if _, ok := o.Rooms.GetRoom("r1"); !ok {
		t.Error("r1 deleted while p2 remains")
	}
	if _, ok := o.Rooms.GetRoom("r2"); ok {
		t.Error("r2 kept after its only member disconnected")
	}
}

// After every join and leave each member's latest roster matches membership.
func TestRosterTracksMembership(t *testing.T) {
	t.Parallel()
	o, rec := newTestOrch(t, []domain.RoomID{"r1"}, "p1", "p2", "p3")
	o.CreateRoom("p1")

	steps := []func(){
		func() { _ = o.JoinRoom("p2", "r1") },
		func() { o.LeaveRoom("p1", "r1") },
		func() { _ = o.JoinRoom("p3", "r1") },
		func() { o.ReconcileDisconnect("p2") },
		func() { _ = o.JoinRoom("p1", "r1") },
	}
	for i, step := range steps {
		rec.reset()
		step()
		room, ok := o.Rooms.GetRoom("r1")
		if !ok {
			t.Fatalf("step %d: room vanished", i)
		}
		members := room.Members()
		if len(members) < 1 || len(members) > domain.MaxRoomMembers {
			t.Fatalf("step %d: member count %d out of range", i, len(members))
		}
		for _, sid := range members {
			evs := rec.to(sid)
			if len(evs) == 0 || evs[len(evs)-1].Name != core.EventRoomPeers {
				t.Fatalf("step %d: %s got no roster", i, sid)
			}
			var ids []core.SessionID
			for _, e := range evs[len(evs)-1].Data.(core.RoomPeers).Peers {
				ids = append(ids, core.SessionID(e.SocketID))
			}
			if !reflect.DeepEqual(ids, members) {
				t.Errorf("step %d: roster to %s is %v, want %v", i, sid, ids, members)
			}
		}
	}
}

func TestJoinEmitOrder(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	emitter := coremock.NewMockEmitter(ctrl)
	o, _ := newTestOrch(t, []domain.RoomID{"r1"}, "p1", "p2")
	o.Emitter = emitter

	want := roster(entry("p1"), entry("p2"))
	gomock.InOrder(
		emitter.EXPECT().Emit(core.SessionID("p1"), core.Event{Name: core.EventRoomCreated, Data: core.RoomCreated{RoomID: "r1"}}),
		emitter.EXPECT().Emit(core.SessionID("p1"), core.Event{Name: core.EventPeerJoined, Data: core.PeerRef{SocketID: "p2"}}),
		emitter.EXPECT().Emit(core.SessionID("p2"), core.Event{Name: core.EventRoomJoined}),
		emitter.EXPECT().Emit(core.SessionID("p1"), want),
		emitter.EXPECT().Emit(core.SessionID("p2"), want),
	)

	o.CreateRoom("p1")
	if err := o.JoinRoom("p2", "r1"); err != nil {
		t.Fatalf("JoinRoom: %v", err)
	}
}
